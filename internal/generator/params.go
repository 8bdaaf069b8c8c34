package generator

import (
	"errors"
	"fmt"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
)

var ErrInvalidParams = errors.New("invalid generator parameters")

type SumWindow struct {
	Mode         enum.SumWindowMode `json:"mode" yaml:"mode"`
	Confidence   float64            `json:"confidence" yaml:"confidence"`
	Anchor       int                `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	AnchorSpread int                `json:"anchor_spread" yaml:"anchor_spread"`
	Tolerance    float64            `json:"tolerance" yaml:"tolerance"`
}

type Params struct {
	MaxAttempts int           `json:"max_attempts" yaml:"max_attempts"`
	Want        int           `json:"want" yaml:"want"`
	Strategy    enum.Strategy `json:"strategy" yaml:"strategy"`
	Seed        uint64        `json:"seed" yaml:"seed"`
	SumWindow   SumWindow     `json:"sum_window" yaml:"sum_window"`
	MinAC       int           `json:"min_ac" yaml:"min_ac"`
	// MaxLastDrawOverlap < 0 disables the latest-draw check.
	MaxLastDrawOverlap int `json:"max_last_draw_overlap" yaml:"max_last_draw_overlap"`
	Modulus            int `json:"modulus" yaml:"modulus"`
	MaxPerResidue      int `json:"max_per_residue" yaml:"max_per_residue"`
	// MaxHistoryHit 0 disables the collision limit.
	MaxHistoryHit int `json:"max_history_hit" yaml:"max_history_hit"`
	MinOdd        int `json:"min_odd" yaml:"min_odd"`
	MaxOdd        int `json:"max_odd" yaml:"max_odd"`
	MaxRun        int `json:"max_run" yaml:"max_run"`
}

// DefaultParams mirrors the 8000-trial simulation with the profile's AC floor.
func DefaultParams(profile game.Profile) Params {
	return Params{
		MaxAttempts: constant.DefaultMaxAttempts,
		Want:        constant.DefaultCandidates,
		Strategy:    enum.StrategyHot,
		SumWindow: SumWindow{
			Mode:         enum.SumWindowStdDev,
			Confidence:   constant.DefaultConfidence,
			AnchorSpread: constant.DefaultAnchorSpread,
			Tolerance:    constant.DefaultSumTolerance,
		},
		MinAC:              profile.MinAC,
		MaxLastDrawOverlap: constant.DefaultMaxLastDrawOverlap,
		Modulus:            constant.DefaultModulus,
		MaxPerResidue:      constant.DefaultMaxPerResidue,
	}
}

func (p Params) Validate(profile game.Profile) error {
	switch {
	case p.MaxAttempts <= 0:
		return fmt.Errorf("%w: max_attempts must be > 0", ErrInvalidParams)
	case p.Want <= 0:
		return fmt.Errorf("%w: want must be > 0", ErrInvalidParams)
	case !p.Strategy.Valid():
		return fmt.Errorf("%w: strategy %q", ErrInvalidParams, p.Strategy)
	case !p.SumWindow.Mode.Valid():
		return fmt.Errorf("%w: sum window mode %q", ErrInvalidParams, p.SumWindow.Mode)
	case p.SumWindow.Mode == enum.SumWindowStdDev &&
		(p.SumWindow.Confidence < constant.MinConfidence || p.SumWindow.Confidence > constant.MaxConfidence):
		return fmt.Errorf("%w: confidence %.2f not in %.1f..%.1f", ErrInvalidParams,
			p.SumWindow.Confidence, constant.MinConfidence, constant.MaxConfidence)
	case p.SumWindow.Mode == enum.SumWindowAnchor && p.SumWindow.Anchor <= 0:
		return fmt.Errorf("%w: anchor mode needs a positive anchor sum", ErrInvalidParams)
	case p.SumWindow.Mode == enum.SumWindowTolerance && p.SumWindow.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance must be > 0", ErrInvalidParams)
	case p.MinAC < 0 || p.MinAC > game.MaxAC(profile.PickCount):
		return fmt.Errorf("%w: min_ac %d not in 0..%d", ErrInvalidParams, p.MinAC, game.MaxAC(profile.PickCount))
	case p.Modulus < 0 || p.MaxPerResidue < 0:
		return fmt.Errorf("%w: modulus and max_per_residue must be >= 0", ErrInvalidParams)
	case p.MaxHistoryHit < 0 || p.MaxHistoryHit > profile.PickCount:
		return fmt.Errorf("%w: max_history_hit %d not in 0..%d", ErrInvalidParams, p.MaxHistoryHit, profile.PickCount)
	case p.MinOdd < 0 || p.MaxOdd < 0 || (p.MaxOdd > 0 && p.MinOdd > p.MaxOdd):
		return fmt.Errorf("%w: odd bounds %d..%d", ErrInvalidParams, p.MinOdd, p.MaxOdd)
	case p.MinOdd > profile.PickCount:
		return fmt.Errorf("%w: min_odd %d exceeds pick count", ErrInvalidParams, p.MinOdd)
	case p.MaxRun < 0:
		return fmt.Errorf("%w: max_run must be >= 0", ErrInvalidParams)
	}
	return nil
}

// Window is the inclusive sum range a candidate must fall in. Exclusive is
// set for tolerance mode, where both bounds are open.
type Window struct {
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
	Exclusive bool    `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
}

func (w Window) Contains(sum int) bool {
	s := float64(sum)
	if w.Exclusive {
		return s > w.Min && s < w.Max
	}
	return s >= w.Min && s <= w.Max
}

func (w Window) String() string {
	if w.Exclusive {
		return fmt.Sprintf("(%.1f, %.1f)", w.Min, w.Max)
	}
	return fmt.Sprintf("[%.1f, %.1f]", w.Min, w.Max)
}

// Resolve turns the window settings into bounds. A positive Anchor always
// wins over the configured mode.
func (sw SumWindow) Resolve(mean, std float64) Window {
	mode := sw.Mode
	if sw.Anchor > 0 {
		mode = enum.SumWindowAnchor
	}
	switch mode {
	case enum.SumWindowAnchor:
		a, d := float64(sw.Anchor), float64(sw.AnchorSpread)
		return Window{Min: a - d, Max: a + d}
	case enum.SumWindowTolerance:
		return Window{Min: mean - sw.Tolerance, Max: mean + sw.Tolerance, Exclusive: true}
	default:
		return Window{Min: mean - std*sw.Confidence, Max: mean + std*sw.Confidence}
	}
}
