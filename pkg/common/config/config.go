package config

import (
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
)

type Config struct {
	Environment string       `yaml:"environment" validate:"required,oneof=production development"`
	Log         LogCfg       `yaml:"log"`
	History     HistoryCfg   `yaml:"history"`
	Games       []GameCfg    `yaml:"games" validate:"dive"`
	Generator   GeneratorCfg `yaml:"generator"`
}

type LogCfg struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	TimeFormat string `yaml:"time_format"`
	NoColor    bool   `yaml:"no_color"`
}

type HistoryCfg struct {
	Game        string `yaml:"game"`
	Column      int    `yaml:"column" validate:"gte=1"`
	Span        int    `yaml:"span" validate:"gte=1"`
	Sheet       string `yaml:"sheet"`
	LatestFirst *bool  `yaml:"latest_first"`
	Strict      bool   `yaml:"strict"`
}

// GameCfg adds a profile or overrides fields of a built-in one.
type GameCfg struct {
	Name      string `yaml:"name" validate:"required"`
	Title     string `yaml:"title"`
	MaxNumber int    `yaml:"max_number" validate:"gte=0"`
	PickCount int    `yaml:"pick_count" validate:"gte=0"`
	MinAC     int    `yaml:"min_ac" validate:"gte=0"`
}

type SumWindowCfg struct {
	Mode         enum.SumWindowMode `yaml:"mode" validate:"oneof=stddev anchor tolerance"`
	Confidence   float64            `yaml:"confidence" validate:"gte=0.5,lte=2"`
	Anchor       int                `yaml:"anchor" validate:"gte=0"`
	AnchorSpread int                `yaml:"anchor_spread" validate:"gte=0"`
	Tolerance    float64            `yaml:"tolerance" validate:"gt=0"`
}

type OddCfg struct {
	Min int `yaml:"min" validate:"gte=0"`
	Max int `yaml:"max" validate:"gte=0"`
}

type GeneratorCfg struct {
	Attempts           int           `yaml:"attempts" validate:"gte=1"`
	Candidates         int           `yaml:"candidates" validate:"gte=1"`
	Strategy           enum.Strategy `yaml:"strategy" validate:"oneof=uniform hot cold"`
	Seed               uint64        `yaml:"seed"`
	SumWindow          SumWindowCfg  `yaml:"sum_window"`
	MinAC              int           `yaml:"min_ac" validate:"gte=0"`
	MaxLastDrawOverlap *int          `yaml:"max_last_draw_overlap"`
	Modulus            int           `yaml:"modulus" validate:"gte=0"`
	MaxPerResidue      int           `yaml:"max_per_residue" validate:"gte=0"`
	MaxHistoryHit      int           `yaml:"max_history_hit" validate:"gte=0"`
	Odd                OddCfg        `yaml:"odd"`
	MaxRun             int           `yaml:"max_run" validate:"gte=0"`
	HotCount           int           `yaml:"hot_count" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	latestFirst := true
	overlap := constant.DefaultMaxLastDrawOverlap
	return Config{
		Environment: constant.EnvDevelopment,
		Log: LogCfg{
			Level:      "info",
			TimeFormat: constant.DefaultTimeFormat,
		},
		History: HistoryCfg{
			Game:        constant.DefaultGame,
			Column:      constant.DefaultDrawColumn,
			Span:        1,
			LatestFirst: &latestFirst,
		},
		Generator: GeneratorCfg{
			Attempts:   constant.DefaultMaxAttempts,
			Candidates: constant.DefaultCandidates,
			Strategy:   enum.StrategyHot,
			SumWindow: SumWindowCfg{
				Mode:         enum.SumWindowStdDev,
				Confidence:   constant.DefaultConfidence,
				AnchorSpread: constant.DefaultAnchorSpread,
				Tolerance:    constant.DefaultSumTolerance,
			},
			MaxLastDrawOverlap: &overlap,
			Modulus:            constant.DefaultModulus,
			MaxPerResidue:      constant.DefaultMaxPerResidue,
			HotCount:           constant.DefaultHotCount,
		},
	}
}
