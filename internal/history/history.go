package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/logger"
	"github.com/fystack/lotto-analyzer/pkg/common/types"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoDraws           = errors.New("file format mismatch: the draw column holds no valid rows")
	ErrUnsupportedFormat = errors.New("unsupported history file format")
	ErrSheetNotFound     = errors.New("sheet not found")
)

type Options struct {
	// Column is the 1-based column holding the drawn numbers.
	Column int
	// Span joins this many columns starting at Column, for sheets that keep
	// one ball per cell. 0 or 1 reads a single column.
	Span  int
	Sheet string
	// LatestFirst tells whether the file lists the most recent draw first.
	LatestFirst bool
	// Strict fails the load on any non-empty row that is not a valid draw.
	Strict bool
}

func DefaultOptions() Options {
	return Options{
		Column:      constant.DefaultDrawColumn,
		Span:        1,
		LatestFirst: true,
	}
}

// History holds the parsed draws, newest first.
type History struct {
	Source  string
	Draws   []types.Combination
	Skipped int
}

// Latest returns the most recent draw.
func (h *History) Latest() types.Combination {
	if h == nil || len(h.Draws) == 0 {
		return nil
	}
	return h.Draws[0]
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Draws)
}

// Load reads an .xlsx or .csv/.txt file and keeps every row whose draw
// column parses into a valid combination for the profile.
func Load(ctx context.Context, path string, profile game.Profile, opts Options) (*History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, opts.Sheet)
	case ".csv", ".txt":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	h, err := FromRows(rows, profile, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	h.Source = path
	logger.Debug("History loaded", "path", path, "draws", h.Len(), "skipped", h.Skipped)
	return h, nil
}

// FromRows extracts draws from raw table rows.
func FromRows(rows [][]string, profile game.Profile, opts Options) (*History, error) {
	if opts.Column <= 0 {
		opts.Column = constant.DefaultDrawColumn
	}
	if opts.Span <= 0 {
		opts.Span = 1
	}

	h := &History{}
	rowErrs := &types.MultiError{}
	for i, row := range rows {
		cell := drawCell(row, opts.Column, opts.Span)
		if strings.TrimSpace(cell) == "" {
			continue
		}
		nums := ParseRow(cell)
		if i == 0 && len(nums) == 0 {
			// header row
			continue
		}
		combo := types.Combination(nums)
		if err := combo.Validate(profile.MaxNumber, profile.PickCount); err != nil {
			h.Skipped++
			rowErrs.Add(fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		h.Draws = append(h.Draws, combo)
	}

	if opts.Strict {
		if err := rowErrs.ErrOrNil(); err != nil {
			return nil, err
		}
	}
	if len(h.Draws) == 0 {
		return nil, ErrNoDraws
	}
	if !opts.LatestFirst {
		slices.Reverse(h.Draws)
	}
	return h, nil
}

func drawCell(row []string, column, span int) string {
	start := column - 1
	if start >= len(row) {
		return ""
	}
	end := min(start+span, len(row))
	return strings.Join(row[start:end], ",")
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheet = sheets[0]
	} else if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads every record, tolerating ragged rows and stray quotes.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}
