package constant

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DefaultGame        = "lotto649"
	DefaultDrawColumn  = 2
	DefaultHotCount    = 6
	DefaultMinBacktest = 2

	// Generator defaults follow the 8000-trial simulation.
	DefaultMaxAttempts        = 8000
	DefaultCandidates         = 10
	DefaultConfidence         = 1.0
	MinConfidence             = 0.5
	MaxConfidence             = 2.0
	DefaultAnchorSpread       = 15
	DefaultSumTolerance       = 30
	DefaultMaxLastDrawOverlap = 2
	DefaultModulus            = 3
	DefaultMaxPerResidue      = 4
	// ExcludeWonHistoryHit is the collision limit used by --exclude-won.
	ExcludeWonHistoryHit = 3

	DefaultTimeFormat = "15:04:05"
)
