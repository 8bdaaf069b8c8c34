package enum

type Strategy string
type SumWindowMode string
type ExportFormat string

const (
	StrategyUniform Strategy = "uniform"
	StrategyHot     Strategy = "hot"
	StrategyCold    Strategy = "cold"
)

const (
	SumWindowStdDev    SumWindowMode = "stddev"
	SumWindowAnchor    SumWindowMode = "anchor"
	SumWindowTolerance SumWindowMode = "tolerance"
)

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

func (s Strategy) Valid() bool {
	switch s {
	case StrategyUniform, StrategyHot, StrategyCold:
		return true
	}
	return false
}

func (m SumWindowMode) Valid() bool {
	switch m {
	case SumWindowStdDev, SumWindowAnchor, SumWindowTolerance:
		return true
	}
	return false
}

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatYAML, ExportFormatCSV, ExportFormatXLSX:
		return true
	}
	return false
}
