package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/scoring"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var ErrEmptyHistory = errors.New("no draws to summarise")

type NumberCount struct {
	Number int `json:"number" yaml:"number"`
	Count  int `json:"count" yaml:"count"`
}

// Summary holds descriptive statistics over a draw history.
type Summary struct {
	Game      string
	Draws     int
	MeanSum   float64
	StdDevSum float64 // population standard deviation
	MinSum    int
	MaxSum    int
	// Frequencies covers every number in 1..MaxNumber, zero counts included.
	Frequencies     map[int]int
	Hot             []NumberCount
	Cold            []NumberCount
	OddDistribution map[int]int
}

// Compute summarises draws for profile, keeping the hotN most and least
// frequent numbers.
func Compute(draws []types.Combination, profile game.Profile, hotN int) (*Summary, error) {
	if len(draws) == 0 {
		return nil, ErrEmptyHistory
	}

	sums := lo.Map(draws, func(d types.Combination, _ int) int { return d.Sum() })
	mean, std := MeanStd(sums)

	s := &Summary{
		Game:            profile.Name,
		Draws:           len(draws),
		MeanSum:         mean,
		StdDevSum:       std,
		MinSum:          lo.Min(sums),
		MaxSum:          lo.Max(sums),
		Frequencies:     make(map[int]int, profile.MaxNumber),
		OddDistribution: make(map[int]int),
	}
	for n := 1; n <= profile.MaxNumber; n++ {
		s.Frequencies[n] = 0
	}
	for _, d := range draws {
		for _, n := range d {
			s.Frequencies[n]++
		}
		s.OddDistribution[scoring.OddCount(d)]++
	}
	s.Hot, s.Cold = hotCold(s.Frequencies, hotN)
	return s, nil
}

// MeanStd returns the mean and population standard deviation of values.
func MeanStd(values []int) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	n := float64(len(values))
	mean = float64(lo.Sum(values)) / n
	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / n)
}

func hotCold(freq map[int]int, n int) (hot, cold []NumberCount) {
	all := make([]NumberCount, 0, len(freq))
	for num, c := range freq {
		all = append(all, NumberCount{Number: num, Count: c})
	}
	n = min(max(n, 0), len(all))

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Number < all[j].Number
	})
	hot = append([]NumberCount(nil), all[:n]...)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count < all[j].Count
		}
		return all[i].Number < all[j].Number
	})
	cold = append([]NumberCount(nil), all[:n]...)
	return hot, cold
}

// SuggestedRange is the one-sigma band around the mean sum, truncated to
// integers.
func (s *Summary) SuggestedRange() (low, high int) {
	return int(s.MeanSum - s.StdDevSum), int(s.MeanSum + s.StdDevSum)
}

// MaxFrequency is the highest count of any single number.
func (s *Summary) MaxFrequency() int {
	return lo.Max(lo.Values(s.Frequencies))
}

// Overview is the rounded, presentation-ready form of a Summary.
type Overview struct {
	Game      string          `json:"game" yaml:"game"`
	Draws     int             `json:"draws" yaml:"draws"`
	MeanSum   decimal.Decimal `json:"mean_sum" yaml:"mean_sum"`
	StdDevSum decimal.Decimal `json:"stddev_sum" yaml:"stddev_sum"`
	RangeLow  int             `json:"range_low" yaml:"range_low"`
	RangeHigh int             `json:"range_high" yaml:"range_high"`
	MinSum    int             `json:"min_sum" yaml:"min_sum"`
	MaxSum    int             `json:"max_sum" yaml:"max_sum"`
	Hot       []NumberCount   `json:"hot" yaml:"hot"`
	Cold      []NumberCount   `json:"cold" yaml:"cold"`
}

func (s *Summary) Overview() Overview {
	low, high := s.SuggestedRange()
	return Overview{
		Game:      s.Game,
		Draws:     s.Draws,
		MeanSum:   Round1(s.MeanSum),
		StdDevSum: Round1(s.StdDevSum),
		RangeLow:  low,
		RangeHigh: high,
		MinSum:    s.MinSum,
		MaxSum:    s.MaxSum,
		Hot:       s.Hot,
		Cold:      s.Cold,
	}
}

// Round1 rounds v half away from zero to one decimal place.
func Round1(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(1)
}
