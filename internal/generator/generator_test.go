package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/sampler"
	"github.com/fystack/lotto-analyzer/internal/scoring"
	"github.com/fystack/lotto-analyzer/internal/stats"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	profile game.Profile
	draws   []types.Combination
	summary *stats.Summary
}

func (s *GeneratorTestSuite) SetupSuite() {
	s.profile = game.Lotto649

	smp, err := sampler.New(enum.StrategyUniform, s.profile, nil)
	s.Require().NoError(err)
	rng, _ := sampler.NewRand(2024)
	for i := 0; i < 300; i++ {
		s.draws = append(s.draws, smp.Sample(rng))
	}
	s.summary, err = stats.Compute(s.draws, s.profile, 6)
	s.Require().NoError(err)
}

func (s *GeneratorTestSuite) params() Params {
	p := DefaultParams(s.profile)
	p.Seed = 11
	return p
}

func (s *GeneratorTestSuite) TestCandidatesSatisfyEveryFilter() {
	p := s.params()
	p.MaxHistoryHit = 3
	p.MinOdd, p.MaxOdd = 2, 4
	p.MaxRun = 2

	g, err := New(s.profile, s.draws, s.summary, p)
	s.Require().NoError(err)
	res, err := g.Generate(context.Background())
	s.Require().NoError(err)

	s.NotEmpty(res.RunID)
	s.LessOrEqual(len(res.Candidates), p.Want)
	s.LessOrEqual(res.Attempts, p.MaxAttempts)

	latest := s.draws[0]
	seen := map[string]bool{}
	for _, c := range res.Candidates {
		s.NoError(c.Numbers.Validate(49, 6))
		s.True(res.Window.Contains(c.Sum))
		s.Equal(c.Numbers.Sum(), c.Sum)
		s.GreaterOrEqual(scoring.ACValue(c.Numbers), p.MinAC)
		s.LessOrEqual(c.Numbers.Overlap(latest), p.MaxLastDrawOverlap)
		s.True(scoring.ModBalanced(c.Numbers, 3, 4))
		s.GreaterOrEqual(c.OddCount, 2)
		s.LessOrEqual(c.OddCount, 4)
		s.LessOrEqual(c.LongestRun, 2)
		s.LessOrEqual(c.MaxHistoryHit, 3)
		s.Len(c.HitHistogram, 7)

		total := 0
		for _, n := range c.HitHistogram {
			total += n
		}
		s.Equal(len(s.draws), total)

		s.False(seen[c.Numbers.Key()], "duplicate candidate %s", c.Numbers)
		seen[c.Numbers.Key()] = true
	}
}

func (s *GeneratorTestSuite) TestSameSeedSameResult() {
	p := s.params()
	g, err := New(s.profile, s.draws, s.summary, p)
	s.Require().NoError(err)

	a, err := g.Generate(context.Background())
	s.Require().NoError(err)
	b, err := g.Generate(context.Background())
	s.Require().NoError(err)

	s.Equal(a.Candidates, b.Candidates)
	s.Equal(a.Attempts, b.Attempts)
	s.Equal(uint64(11), a.Seed)
	s.NotEqual(a.RunID, b.RunID)
}

func (s *GeneratorTestSuite) TestAttemptCapIsHard() {
	p := s.params()
	p.MaxAttempts = 50
	p.Want = 1000

	g, err := New(s.profile, s.draws, s.summary, p)
	s.Require().NoError(err)
	res, err := g.Generate(context.Background())
	if err != nil {
		s.True(errors.Is(err, ErrNoCandidates))
	}
	s.Require().NotNil(res)
	s.Equal(50, res.Attempts)

	rejected := 0
	for _, n := range res.Rejections {
		rejected += n
	}
	s.Equal(res.Attempts, rejected+len(res.Candidates))
}

func (s *GeneratorTestSuite) TestImpossibleFiltersYieldNoCandidates() {
	p := s.params()
	p.MaxAttempts = 200
	p.SumWindow = SumWindow{Mode: enum.SumWindowAnchor, Anchor: 5, AnchorSpread: 1}

	g, err := New(s.profile, s.draws, s.summary, p)
	s.Require().NoError(err)
	res, err := g.Generate(context.Background())
	s.True(errors.Is(err, ErrNoCandidates))
	s.Equal(200, res.Rejections[RejectSum])

	_, _, err = res.Recommend()
	s.True(errors.Is(err, ErrNoCandidates))
}

func (s *GeneratorTestSuite) TestRecommendReturnsACandidate() {
	g, err := New(s.profile, s.draws, s.summary, s.params())
	s.Require().NoError(err)
	res, err := g.Generate(context.Background())
	s.Require().NoError(err)

	c, idx, err := res.Recommend()
	s.Require().NoError(err)
	s.Equal(res.Candidates[idx], c)
}

func (s *GeneratorTestSuite) TestCancelledContext() {
	g, err := New(s.profile, s.draws, s.summary, s.params())
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx)
	s.True(errors.Is(err, context.Canceled))
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func TestNew_RejectsBadInput(t *testing.T) {
	p := DefaultParams(game.Daily539)
	_, err := New(game.Daily539, nil, &stats.Summary{}, p)
	assert.True(t, errors.Is(err, stats.ErrEmptyHistory))

	p.Want = 0
	_, err = New(game.Daily539, []types.Combination{{1, 2, 3, 4, 5}}, &stats.Summary{}, p)
	assert.True(t, errors.Is(err, ErrInvalidParams))
}

func TestParamsValidate(t *testing.T) {
	base := DefaultParams(game.Daily539)
	require.NoError(t, base.Validate(game.Daily539))

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"attempts", func(p *Params) { p.MaxAttempts = 0 }},
		{"strategy", func(p *Params) { p.Strategy = "lucky" }},
		{"mode", func(p *Params) { p.SumWindow.Mode = "median" }},
		{"confidence low", func(p *Params) { p.SumWindow.Confidence = 0.4 }},
		{"confidence high", func(p *Params) { p.SumWindow.Confidence = 2.5 }},
		{"anchor missing", func(p *Params) { p.SumWindow.Mode = enum.SumWindowAnchor }},
		{"tolerance zero", func(p *Params) {
			p.SumWindow.Mode = enum.SumWindowTolerance
			p.SumWindow.Tolerance = 0
		}},
		{"ac above max", func(p *Params) { p.MinAC = 7 }},
		{"history hit above k", func(p *Params) { p.MaxHistoryHit = 6 }},
		{"odd inverted", func(p *Params) { p.MinOdd, p.MaxOdd = 3, 2 }},
		{"run negative", func(p *Params) { p.MaxRun = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			assert.True(t, errors.Is(p.Validate(game.Daily539), ErrInvalidParams))
		})
	}
}

func TestSumWindowResolve(t *testing.T) {
	sw := SumWindow{Mode: enum.SumWindowStdDev, Confidence: 1.5, AnchorSpread: 15, Tolerance: 30}

	w := sw.Resolve(150, 20)
	assert.Equal(t, Window{Min: 120, Max: 180}, w)
	assert.True(t, w.Contains(120))
	assert.True(t, w.Contains(180))
	assert.False(t, w.Contains(181))

	sw.Anchor = 100
	w = sw.Resolve(150, 20)
	assert.Equal(t, Window{Min: 85, Max: 115}, w)

	sw.Anchor = 0
	sw.Mode = enum.SumWindowTolerance
	w = sw.Resolve(150, 20)
	assert.True(t, w.Exclusive)
	assert.False(t, w.Contains(120))
	assert.True(t, w.Contains(121))
	assert.False(t, w.Contains(180))
	assert.Equal(t, "(120.0, 180.0)", w.String())
}
