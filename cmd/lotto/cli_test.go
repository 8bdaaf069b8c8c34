package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fystack/lotto-analyzer/internal/game"
	"github.com/fystack/lotto-analyzer/internal/generator"
	"github.com/fystack/lotto-analyzer/internal/sampler"
	"github.com/fystack/lotto-analyzer/pkg/common/constant"
	"github.com/fystack/lotto-analyzer/pkg/common/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeHistory writes n uniform lotto 6/49 draws as a two-column CSV with a
// header row, newest first.
func writeHistory(t *testing.T, n int) string {
	t.Helper()
	smp, err := sampler.New(enum.StrategyUniform, game.Lotto649, nil)
	require.NoError(t, err)
	rng, _ := sampler.NewRand(5)

	var b strings.Builder
	b.WriteString("period,numbers\n")
	for i := 0; i < n; i++ {
		c := smp.Sample(rng)
		fmt.Fprintf(&b, "%d,\"%s\"\n", 113000000+n-i, strings.Trim(c.String(), "[]"))
	}
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGamesCmd(t *testing.T) {
	out, err := execute(t, "games")
	require.NoError(t, err)
	assert.Contains(t, out, "lotto649")
	assert.Contains(t, out, "daily539")
}

func TestStatsCmd(t *testing.T) {
	path := writeHistory(t, 120)
	out, err := execute(t, "stats", path, "--hot", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "120 draws")
	assert.Contains(t, out, "SUGGESTED RANGE")
}

func TestStatsCmd_JSONToStdout(t *testing.T) {
	path := writeHistory(t, 50)
	out, err := execute(t, "stats", path, "--format", "json")
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(50), decoded["stats"]["draws"])
}

func TestGenerateCmd_ExportsJSON(t *testing.T) {
	path := writeHistory(t, 200)
	outPath := filepath.Join(t.TempDir(), "picks.json")

	out, err := execute(t, "generate", path, "--seed", "3", "-k", "4", "--exclude-won", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var payload struct {
		Result      generator.Result    `json:"result"`
		Recommended generator.Candidate `json:"recommended"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, uint64(3), payload.Result.Seed)
	assert.LessOrEqual(t, len(payload.Result.Candidates), 4)
	assert.NotEmpty(t, payload.Result.Candidates)
	for _, c := range payload.Result.Candidates {
		assert.LessOrEqual(t, c.MaxHistoryHit, constant.ExcludeWonHistoryHit)
		assert.GreaterOrEqual(t, c.AC, game.Lotto649.MinAC)
	}
	assert.Len(t, payload.Recommended.Numbers, 6)
}

func TestGenerateCmd_XLSX(t *testing.T) {
	path := writeHistory(t, 100)
	outPath := filepath.Join(t.TempDir(), "picks.xlsx")

	_, err := execute(t, "generate", path, "--seed", "9", "--strategy", "cold", "-o", outPath)
	require.NoError(t, err)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Candidates", "Stats"}, f.GetSheetList())
}

func TestGenerateCmd_ImpossibleWindow(t *testing.T) {
	path := writeHistory(t, 60)
	_, err := execute(t, "generate", path, "--anchor-sum", "10", "--anchor-spread", "1", "-n", "100")
	assert.ErrorIs(t, err, generator.ErrNoCandidates)
}

func TestGenerateCmd_InvalidFlags(t *testing.T) {
	path := writeHistory(t, 60)
	_, err := execute(t, "generate", path, "--confidence", "5")
	assert.ErrorIs(t, err, generator.ErrInvalidParams)

	_, err = execute(t, "generate", path, "--game", "powerball")
	assert.ErrorIs(t, err, game.ErrUnknownGame)
}

func TestBacktestCmd(t *testing.T) {
	path := writeHistory(t, 80)
	out, err := execute(t, "backtest", path, "--combo", "1,2,3,4,5,6", "--min-hits", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Back-test 01 02 03 04 05 06 against 80 draws")

	_, err = execute(t, "backtest", path)
	assert.Error(t, err, "--combo is required")

	_, err = execute(t, "backtest", path, "--combo", "1,2,3")
	assert.Error(t, err)
}

func TestConfigFileSelectsGame(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("environment: development\nhistory:\n  game: daily539\n"), 0o644))

	histPath := filepath.Join(dir, "539.csv")
	require.NoError(t, os.WriteFile(histPath, []byte("1,\"01 05 12 23 34\"\n2,\"02 06 13 24 35\"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "stats", histPath)
	require.NoError(t, err)
	assert.Contains(t, out, "daily539")
	assert.Contains(t, out, "2 draws")
}
