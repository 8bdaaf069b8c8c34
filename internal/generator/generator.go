package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/sampler"
	"github.com/fystack/lotto-analyzer/internal/scoring"
	"github.com/fystack/lotto-analyzer/internal/stats"
	"github.com/fystack/lotto-analyzer/pkg/common/logger"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/google/uuid"
)

var ErrNoCandidates = errors.New("no combination passed the filters, relax the parameters")

// ctxCheckEvery is how many attempts run between context checks.
const ctxCheckEvery = 512

// Rejection reasons, in filter order.
const (
	RejectDuplicate = "duplicate"
	RejectSum       = "sum"
	RejectAC        = "ac"
	RejectLastDraw  = "last_draw"
	RejectModulo    = "modulo"
	RejectOddEven   = "odd_even"
	RejectRun       = "run"
	RejectCollision = "collision"
)

type Candidate struct {
	Numbers         types.Combination `json:"numbers" yaml:"numbers"`
	Sum             int               `json:"sum" yaml:"sum"`
	AC              int               `json:"ac" yaml:"ac"`
	OddCount        int               `json:"odd_count" yaml:"odd_count"`
	LongestRun      int               `json:"longest_run" yaml:"longest_run"`
	LastDrawOverlap int               `json:"last_draw_overlap" yaml:"last_draw_overlap"`
	MaxHistoryHit   int               `json:"max_history_hit" yaml:"max_history_hit"`
	// HitHistogram[h] counts past draws sharing exactly h balls.
	HitHistogram []int `json:"hit_histogram" yaml:"hit_histogram"`
}

type Result struct {
	RunID      string         `json:"run_id" yaml:"run_id"`
	Game       string         `json:"game" yaml:"game"`
	Strategy   string         `json:"strategy" yaml:"strategy"`
	Seed       uint64         `json:"seed" yaml:"seed"`
	Attempts   int            `json:"attempts" yaml:"attempts"`
	Window     Window         `json:"window" yaml:"window"`
	Candidates []Candidate    `json:"candidates" yaml:"candidates"`
	Rejections map[string]int `json:"rejections" yaml:"rejections"`

	rng *rand.Rand
}

// Recommend picks one candidate at random.
func (r *Result) Recommend() (Candidate, int, error) {
	if r == nil || len(r.Candidates) == 0 {
		return Candidate{}, -1, ErrNoCandidates
	}
	rng := r.rng
	if rng == nil {
		rng, _ = sampler.NewRand(r.Seed)
	}
	i := rng.IntN(len(r.Candidates))
	return r.Candidates[i], i, nil
}

type Generator struct {
	profile game.Profile
	params  Params
	draws   []types.Combination
	summary *stats.Summary
}

// New prepares a generator over draws (newest first) and their summary.
func New(profile game.Profile, draws []types.Combination, summary *stats.Summary, params Params) (*Generator, error) {
	if err := params.Validate(profile); err != nil {
		return nil, err
	}
	if len(draws) == 0 || summary == nil {
		return nil, stats.ErrEmptyHistory
	}
	return &Generator{profile: profile, params: params, draws: draws, summary: summary}, nil
}

// Generate samples until Want distinct candidates pass every filter or
// MaxAttempts samples were drawn.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	p := g.params
	smp, err := sampler.New(p.Strategy, g.profile, g.summary.Frequencies)
	if err != nil {
		return nil, err
	}
	rng, seed := sampler.NewRand(p.Seed)

	res := &Result{
		RunID:      uuid.NewString(),
		Game:       g.profile.Name,
		Strategy:   string(p.Strategy),
		Seed:       seed,
		Window:     p.SumWindow.Resolve(g.summary.MeanSum, g.summary.StdDevSum),
		Rejections: make(map[string]int),
		rng:        rng,
	}
	log := logger.With("run_id", res.RunID, "game", res.Game)
	log.Debug("Generating candidates",
		"strategy", p.Strategy, "window", res.Window.String(), "max_attempts", p.MaxAttempts, "want", p.Want)

	latest := g.draws[0]
	seen := make(map[string]struct{}, p.Want)
	for res.Attempts < p.MaxAttempts && len(res.Candidates) < p.Want {
		if res.Attempts%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("generate interrupted after %d attempts: %w", res.Attempts, err)
			}
		}
		res.Attempts++

		combo := smp.Sample(rng)
		if _, dup := seen[combo.Key()]; dup {
			res.Rejections[RejectDuplicate]++
			continue
		}
		cand, reason := g.evaluate(combo, latest, res.Window)
		if reason != "" {
			res.Rejections[reason]++
			continue
		}
		seen[combo.Key()] = struct{}{}
		res.Candidates = append(res.Candidates, cand)
	}

	log.Debug("Generation finished", "attempts", res.Attempts, "candidates", len(res.Candidates), "rejections", res.Rejections)
	if len(res.Candidates) == 0 {
		return res, ErrNoCandidates
	}
	return res, nil
}

// evaluate applies the filters in order and returns the first failing
// reason, or "" with the scored candidate.
func (g *Generator) evaluate(combo, latest types.Combination, window Window) (Candidate, string) {
	p := g.params
	k := len(combo)

	sum := combo.Sum()
	if !window.Contains(sum) {
		return Candidate{}, RejectSum
	}
	ac := scoring.ACValue(combo)
	if ac < p.MinAC {
		return Candidate{}, RejectAC
	}
	overlap := combo.Overlap(latest)
	if p.MaxLastDrawOverlap >= 0 && overlap > p.MaxLastDrawOverlap {
		return Candidate{}, RejectLastDraw
	}
	if p.Modulus > 0 && !scoring.ModBalanced(combo, p.Modulus, p.MaxPerResidue) {
		return Candidate{}, RejectModulo
	}
	odd := scoring.OddCount(combo)
	maxOdd := p.MaxOdd
	if maxOdd == 0 {
		maxOdd = k
	}
	if odd < p.MinOdd || odd > maxOdd {
		return Candidate{}, RejectOddEven
	}
	run := scoring.LongestRun(combo)
	if p.MaxRun > 0 && run > p.MaxRun {
		return Candidate{}, RejectRun
	}
	hist, maxHit := scoring.Compare(combo, g.draws)
	if p.MaxHistoryHit > 0 && maxHit > p.MaxHistoryHit {
		return Candidate{}, RejectCollision
	}

	return Candidate{
		Numbers:         combo,
		Sum:             sum,
		AC:              ac,
		OddCount:        odd,
		LongestRun:      run,
		LastDrawOverlap: overlap,
		MaxHistoryHit:   maxHit,
		HitHistogram:    hist,
	}, ""
}
