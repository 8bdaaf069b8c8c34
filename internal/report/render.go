package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fystack/lotto-analyzer/internal/backtest"
	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/generator"
	"github.com/fystack/lotto-analyzer/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	pickStyle   = cellStyle.Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func balls(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

func counts(list []stats.NumberCount) string {
	parts := make([]string, len(list))
	for i, nc := range list {
		parts[i] = fmt.Sprintf("%02d×%d", nc.Number, nc.Count)
	}
	return strings.Join(parts, "  ")
}

// RenderGames lists the known game profiles.
func RenderGames(w io.Writer, profiles []game.Profile) error {
	t := newTable("GAME", "TITLE", "PICK", "RANGE", "MIN AC")
	for _, p := range profiles {
		t.Row(p.Name, p.Title, strconv.Itoa(p.PickCount), fmt.Sprintf("1-%d", p.MaxNumber), strconv.Itoa(p.MinAC))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func RenderStats(w io.Writer, o stats.Overview, s *stats.Summary) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Sum distribution · %s · %d draws", o.Game, o.Draws)))
	b.WriteString("\n")

	t := newTable("MEAN μ", "STD σ", "SUGGESTED RANGE", "MIN", "MAX").
		Row(o.MeanSum.StringFixed(1), o.StdDevSum.StringFixed(1),
			fmt.Sprintf("%d-%d", o.RangeLow, o.RangeHigh), strconv.Itoa(o.MinSum), strconv.Itoa(o.MaxSum))
	b.WriteString(t.Render())
	b.WriteString("\n")

	ft := newTable("", "NUMBERS").
		Row("hot", counts(o.Hot)).
		Row("cold", counts(o.Cold))
	b.WriteString(ft.Render())
	b.WriteString("\n")

	if s != nil && len(s.OddDistribution) > 0 {
		keys := make([]int, 0, len(s.OddDistribution))
		for k := range s.OddDistribution {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		ot := newTable("ODD BALLS", "DRAWS", "SHARE")
		for _, k := range keys {
			n := s.OddDistribution[k]
			ot.Row(strconv.Itoa(k), strconv.Itoa(n), stats.Round1(100*float64(n)/float64(s.Draws)).StringFixed(1)+"%")
		}
		b.WriteString(ot.Render())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCandidates prints every surviving combination, highlighting the
// recommended row. recommended < 0 highlights nothing.
func RenderCandidates(w io.Writer, res *generator.Result, recommended int) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Candidates · %s · %d of %d attempts · sum window %s",
		res.Game, len(res.Candidates), res.Attempts, res.Window)))
	b.WriteString("\n")

	t := newTable("#", "NUMBERS", "SUM", "AC", "ODD", "RUN", "LAST", "MAX HIT").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == recommended:
				return pickStyle
			default:
				return cellStyle
			}
		})
	for i, c := range res.Candidates {
		t.Row(strconv.Itoa(i+1), balls(c.Numbers), strconv.Itoa(c.Sum), strconv.Itoa(c.AC),
			strconv.Itoa(c.OddCount), strconv.Itoa(c.LongestRun), strconv.Itoa(c.LastDrawOverlap),
			strconv.Itoa(c.MaxHistoryHit))
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if recommended >= 0 && recommended < len(res.Candidates) {
		b.WriteString(pickStyle.UnsetPadding().Render("Recommended: " + balls(res.Candidates[recommended].Numbers)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("run %s · strategy %s · seed %d · rejected %s",
		res.RunID, res.Strategy, res.Seed, rejections(res.Rejections))))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func rejections(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}

// RenderBacktest prints the hit histogram from k hits down to zero, then
// the matching draws.
func RenderBacktest(w io.Writer, r *backtest.Report) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Back-test %s against %d draws · best %d hits",
		balls(r.Combo), r.Draws, r.MaxHit)))
	b.WriteString("\n")

	ht := newTable("HITS", "DRAWS")
	for h := len(r.Histogram) - 1; h >= 0; h-- {
		ht.Row(strconv.Itoa(h), strconv.Itoa(r.Histogram[h]))
	}
	b.WriteString(ht.Render())
	b.WriteString("\n")

	if len(r.Matches) > 0 {
		mt := newTable("AGO", "DRAW", "HITS")
		for _, m := range r.Matches {
			mt.Row(strconv.Itoa(m.Index), balls(m.Draw), strconv.Itoa(m.Hits))
		}
		b.WriteString(mt.Render())
		b.WriteString("\n")
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("no draw shared %d or more balls", r.MinHits)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
