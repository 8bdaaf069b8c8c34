package sampler

import (
	"errors"
	"testing"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRand_SeedIsReproducible(t *testing.T) {
	a, seedA := NewRand(42)
	b, seedB := NewRand(42)
	assert.Equal(t, uint64(42), seedA)
	assert.Equal(t, seedA, seedB)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	_, seed := NewRand(0)
	assert.NotZero(t, seed)
}

func TestSample_ProducesValidCombinations(t *testing.T) {
	freq := map[int]int{1: 10, 2: 8, 3: 1}
	for _, strategy := range []enum.Strategy{enum.StrategyUniform, enum.StrategyHot, enum.StrategyCold} {
		t.Run(string(strategy), func(t *testing.T) {
			s, err := New(strategy, game.Lotto649, freq)
			require.NoError(t, err)
			assert.Equal(t, strategy, s.Strategy())

			r, _ := NewRand(7)
			for i := 0; i < 500; i++ {
				c := s.Sample(r)
				require.NoError(t, c.Validate(49, 6), "sample %v", c)
			}
		})
	}
}

func TestSample_SmallRangeTakesEveryBall(t *testing.T) {
	s, err := New(enum.StrategyUniform, game.Profile{Name: "tiny", MaxNumber: 5, PickCount: 5}, nil)
	require.NoError(t, err)
	r, _ := NewRand(1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, []int(s.Sample(r)))
}

func TestHotWeights(t *testing.T) {
	w := HotWeights(5, map[int]int{1: 4, 3: 2})
	assert.Equal(t, []int{4, 1, 2, 1, 1}, w)
}

func TestColdWeights(t *testing.T) {
	w := ColdWeights(5, map[int]int{1: 4, 2: 0, 3: 2, 4: 0, 5: 0})
	assert.Equal(t, []int{1, 5, 3, 5, 5}, w)

	w = ColdWeights(3, nil)
	assert.Equal(t, []int{1, 1, 1}, w)
}

func TestHotStrategyFavoursFrequentBalls(t *testing.T) {
	freq := make(map[int]int)
	for n := 1; n <= 39; n++ {
		freq[n] = 1
	}
	freq[7] = 400

	s, err := New(enum.StrategyHot, game.Daily539, freq)
	require.NoError(t, err)
	r, _ := NewRand(99)

	hits := 0
	const rounds = 2000
	for i := 0; i < rounds; i++ {
		if s.Sample(r).Contains(7) {
			hits++
		}
	}
	// with weight 400 against 38 the ball is nearly always drawn first
	assert.Greater(t, hits, rounds*9/10)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := New("lucky", game.Lotto649, nil)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}
