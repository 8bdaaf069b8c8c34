package backtest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/scoring"
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
)

// Match is one past draw that shared at least the requested number of balls.
type Match struct {
	// Index counts back from the latest draw, which is 0.
	Index int               `json:"index" yaml:"index"`
	Draw  types.Combination `json:"draw" yaml:"draw"`
	Hits  int               `json:"hits" yaml:"hits"`
}

type Report struct {
	Combo     types.Combination `json:"combo" yaml:"combo"`
	Draws     int               `json:"draws" yaml:"draws"`
	Histogram []int             `json:"histogram" yaml:"histogram"`
	MaxHit    int               `json:"max_hit" yaml:"max_hit"`
	MinHits   int               `json:"min_hits" yaml:"min_hits"`
	Matches   []Match           `json:"matches" yaml:"matches"`
}

// Run compares combo against every draw. minHits <= 0 falls back to 2.
func Run(combo types.Combination, draws []types.Combination, profile game.Profile, minHits int) (*Report, error) {
	combo = types.NewCombination(combo)
	if err := combo.Validate(profile.MaxNumber, profile.PickCount); err != nil {
		return nil, fmt.Errorf("invalid combination for %s: %w", profile.Name, err)
	}
	if minHits <= 0 {
		minHits = constant.DefaultMinBacktest
	}

	hist, maxHit := scoring.Compare(combo, draws)
	r := &Report{
		Combo:     combo,
		Draws:     len(draws),
		Histogram: hist,
		MaxHit:    maxHit,
		MinHits:   minHits,
	}
	for i, d := range draws {
		if hits := combo.Overlap(d); hits >= minHits {
			r.Matches = append(r.Matches, Match{Index: i, Draw: d, Hits: hits})
		}
	}
	return r, nil
}

// ParseCombination reads "1,2,3,4,5,6" or "1 2 3 4 5 6".
func ParseCombination(s string) (types.Combination, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, types.ErrEmptyString
	}
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse ball %q: %w", f, err)
		}
		nums = append(nums, n)
	}
	return types.NewCombination(nums), nil
}
