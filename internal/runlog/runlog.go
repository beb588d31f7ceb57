package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/carenavi/sitemapd/internal/models"
)

// RunLog appends one JSON line per generation run to a log file. The
// file is the operational record for the webhook and scheduled triggers,
// which have no user-facing surface.
type RunLog struct {
	mu   sync.Mutex
	file *os.File
}

func New(dir string) (*RunLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run log directory: %w", err)
	}

	path := filepath.Join(dir, "generation.log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}

	return &RunLog{file: file}, nil
}

// Append writes the summary as one line. Logging must not sink a run,
// so failures are reported to the process log and swallowed.
func (rl *RunLog) Append(summary *models.GenerationSummary) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	line, err := json.Marshal(summary)
	if err != nil {
		log.WithError(err).Error("failed to encode generation summary")
		return
	}

	if _, err := rl.file.Write(append(line, '\n')); err != nil {
		log.WithError(err).Error("failed to append generation summary")
	}
}

func (rl *RunLog) Close() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.file.Close()
}
