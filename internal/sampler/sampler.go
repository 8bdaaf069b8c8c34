package sampler

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/samber/lo"
)

var ErrUnknownStrategy = errors.New("unknown sampling strategy")

// Sampler draws one candidate combination per call.
type Sampler interface {
	Sample(r *rand.Rand) types.Combination
	Strategy() enum.Strategy
}

// NewRand returns a PCG-backed generator. A zero seed is replaced by one read
// from crypto/rand; the seed actually used is returned for reproducibility.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
		if seed == 0 {
			seed = rand.Uint64() | 1
		}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// New builds a sampler for profile. frequencies maps ball -> historical count
// and is ignored by the uniform strategy.
func New(strategy enum.Strategy, profile game.Profile, frequencies map[int]int) (Sampler, error) {
	switch strategy {
	case enum.StrategyUniform:
		return &weighted{strategy: strategy, k: profile.PickCount, weights: uniformWeights(profile.MaxNumber)}, nil
	case enum.StrategyHot:
		return &weighted{strategy: strategy, k: profile.PickCount, weights: HotWeights(profile.MaxNumber, frequencies)}, nil
	case enum.StrategyCold:
		return &weighted{strategy: strategy, k: profile.PickCount, weights: ColdWeights(profile.MaxNumber, frequencies)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

func uniformWeights(maxNumber int) []int {
	w := make([]int, maxNumber)
	for i := range w {
		w[i] = 1
	}
	return w
}

// HotWeights weights every ball by its historical count. Balls never drawn
// keep weight 1 so the whole range stays reachable.
func HotWeights(maxNumber int, frequencies map[int]int) []int {
	w := make([]int, maxNumber)
	for i := range w {
		c := frequencies[i+1]
		if c <= 0 {
			c = 1
		}
		w[i] = c
	}
	return w
}

// ColdWeights favours rarely drawn balls: weight = maxCount - count + 1.
func ColdWeights(maxNumber int, frequencies map[int]int) []int {
	maxCount := 0
	if len(frequencies) > 0 {
		maxCount = lo.Max(lo.Values(frequencies))
	}
	w := make([]int, maxNumber)
	for i := range w {
		w[i] = maxCount - frequencies[i+1] + 1
	}
	return w
}

// weighted picks k distinct balls, each pick proportional to the remaining
// weights.
type weighted struct {
	strategy enum.Strategy
	k        int
	weights  []int // weights[i] belongs to ball i+1
}

func (s *weighted) Strategy() enum.Strategy { return s.strategy }

func (s *weighted) Sample(r *rand.Rand) types.Combination {
	pool := slices.Clone(s.weights)
	total := lo.Sum(pool)

	out := make(types.Combination, 0, s.k)
	for len(out) < s.k && total > 0 {
		pick := r.IntN(total)
		for i, w := range pool {
			if pick < w {
				out = append(out, i+1)
				total -= w
				pool[i] = 0
				break
			}
			pick -= w
		}
	}
	slices.Sort(out)
	return out
}
