package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fystack/lotto-analyzer/internal/backtest"
	"github.com/fystack/lotto-analyzer/internal/generator"
	"github.com/fystack/lotto-analyzer/internal/stats"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/fystack/lotto-analyzer/pkg/infra"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrEmptyPayload  = errors.New("nothing to export")
	ErrBinaryStream  = errors.New("xlsx needs an output file")
)

// Payload is everything one command can export.
type Payload struct {
	Stats       *stats.Overview      `json:"stats,omitempty" yaml:"stats,omitempty"`
	Result      *generator.Result    `json:"result,omitempty" yaml:"result,omitempty"`
	Recommended *generator.Candidate `json:"recommended,omitempty" yaml:"recommended,omitempty"`
	Backtest    *backtest.Report     `json:"backtest,omitempty" yaml:"backtest,omitempty"`
}

func (p Payload) empty() bool {
	return p.Stats == nil && p.Result == nil && p.Backtest == nil
}

// ParseFormat accepts a format name, case-insensitively. "yml" maps to yaml.
func ParseFormat(s string) (enum.ExportFormat, error) {
	f := enum.ExportFormat(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if f == "yml" {
		f = enum.ExportFormatYAML
	}
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (enum.ExportFormat, error) {
	return ParseFormat(filepath.Ext(path))
}

// Export writes payload to path. An empty format is taken from the extension.
func Export(path string, format enum.ExportFormat, p Payload) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}
	if p.empty() {
		return ErrEmptyPayload
	}

	if format == enum.ExportFormatXLSX {
		return writeXLSX(path, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, format, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes a text format (json, yaml, csv) to w.
func Encode(w io.Writer, format enum.ExportFormat, p Payload) error {
	if p.empty() {
		return ErrEmptyPayload
	}
	var codec infra.Codec
	switch format {
	case enum.ExportFormatJSON:
		codec = infra.JSON
	case enum.ExportFormatYAML:
		codec = infra.YAML
	case enum.ExportFormatCSV:
		return writeCSV(w, p)
	case enum.ExportFormatXLSX:
		return ErrBinaryStream
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	data, err := codec.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if format == enum.ExportFormatJSON {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// sheet is one flat table of the payload, used by csv and xlsx.
type sheet struct {
	name   string
	header []string
	rows   [][]string
}

func sheets(p Payload) []sheet {
	var out []sheet
	if p.Result != nil {
		s := sheet{
			name:   "Candidates",
			header: []string{"rank", "numbers", "sum", "ac", "odd", "longest_run", "last_draw_overlap", "max_history_hit", "recommended"},
		}
		for i, c := range p.Result.Candidates {
			rec := p.Recommended != nil && p.Recommended.Numbers.Key() == c.Numbers.Key()
			s.rows = append(s.rows, []string{
				strconv.Itoa(i + 1), balls(c.Numbers), strconv.Itoa(c.Sum), strconv.Itoa(c.AC),
				strconv.Itoa(c.OddCount), strconv.Itoa(c.LongestRun), strconv.Itoa(c.LastDrawOverlap),
				strconv.Itoa(c.MaxHistoryHit), strconv.FormatBool(rec),
			})
		}
		out = append(out, s)
	}
	if p.Backtest != nil {
		s := sheet{name: "Backtest", header: []string{"ago", "draw", "hits"}}
		for _, m := range p.Backtest.Matches {
			s.rows = append(s.rows, []string{strconv.Itoa(m.Index), balls(m.Draw), strconv.Itoa(m.Hits)})
		}
		out = append(out, s)
	}
	if p.Stats != nil {
		o := p.Stats
		out = append(out, sheet{
			name:   "Stats",
			header: []string{"game", "draws", "mean_sum", "stddev_sum", "range_low", "range_high", "min_sum", "max_sum", "hot", "cold"},
			rows: [][]string{{
				o.Game, strconv.Itoa(o.Draws), o.MeanSum.StringFixed(1), o.StdDevSum.StringFixed(1),
				strconv.Itoa(o.RangeLow), strconv.Itoa(o.RangeHigh), strconv.Itoa(o.MinSum), strconv.Itoa(o.MaxSum),
				counts(o.Hot), counts(o.Cold),
			}},
		})
	}
	return out
}

// writeCSV writes the first table of the payload.
func writeCSV(w io.Writer, p Payload) error {
	tables := sheets(p)
	cw := csv.NewWriter(w)
	if err := cw.Write(tables[0].header); err != nil {
		return err
	}
	if err := cw.WriteAll(tables[0].rows); err != nil {
		return err
	}
	return cw.Error()
}

func writeXLSX(path string, p Payload) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets(p) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeSheetRow(f, s.name, 1, s.header); err != nil {
			return err
		}
		for r, row := range s.rows {
			if err := writeSheetRow(f, s.name, r+2, row); err != nil {
				return err
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheetName string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		if n, err := strconv.Atoi(v); err == nil {
			vals[i] = n
		} else {
			vals[i] = v
		}
	}
	return f.SetSheetRow(sheetName, cell, &vals)
}
