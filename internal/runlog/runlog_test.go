package runlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carenavi/sitemapd/internal/models"
)

func TestAppendWritesOneLinePerRun(t *testing.T) {
	dir := t.TempDir()
	rl, err := New(dir)
	require.NoError(t, err)
	defer rl.Close()

	rl.Append(&models.GenerationSummary{
		RunID:      "run-1",
		Trigger:    models.TriggerManual,
		StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		TotalFiles: 1971,
	})
	rl.Append(&models.GenerationSummary{
		RunID:   "run-2",
		Trigger: models.TriggerScheduled,
		Errors:  []string{"catalog load: connection refused"},
	})

	f, err := os.Open(filepath.Join(dir, "generation.log"))
	require.NoError(t, err)
	defer f.Close()

	var lines []models.GenerationSummary
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var summary models.GenerationSummary
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &summary))
		lines = append(lines, summary)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, lines, 2)
	assert.Equal(t, "run-1", lines[0].RunID)
	assert.Equal(t, 1971, lines[0].TotalFiles)
	assert.Equal(t, "run-2", lines[1].RunID)
	assert.Equal(t, []string{"catalog load: connection refused"}, lines[1].Errors)
}

func TestNewAppendsAcrossProcesses(t *testing.T) {
	dir := t.TempDir()

	rl, err := New(dir)
	require.NoError(t, err)
	rl.Append(&models.GenerationSummary{RunID: "before-restart"})
	require.NoError(t, rl.Close())

	rl, err = New(dir)
	require.NoError(t, err)
	rl.Append(&models.GenerationSummary{RunID: "after-restart"})
	require.NoError(t, rl.Close())

	data, err := os.ReadFile(filepath.Join(dir, "generation.log"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "before-restart")
	assert.Contains(t, string(data), "after-restart")
}
