package models

import "time"

// Trigger identifies which entry point started a generation run.
type Trigger string

const (
	TriggerManual    Trigger = "manual"
	TriggerOnChange  Trigger = "on-change"
	TriggerScheduled Trigger = "scheduled"
)

// GenerationSummary is the single record written to the run log after
// every run, whether it succeeded, partially failed, or aborted.
// An empty Errors list means full success.
type GenerationSummary struct {
	RunID          string    `json:"runId"`
	Trigger        Trigger   `json:"trigger"`
	StartedAt      time.Time `json:"startedAt"`
	Level1Count    int       `json:"level1Count"`
	Level2Count    int       `json:"level2Count"`
	TotalFiles     int       `json:"totalFiles"`
	TotalSizeBytes int64     `json:"totalSizeBytes"`
	DurationMs     int64     `json:"durationMs"`
	Errors         []string  `json:"errors,omitempty"`
}

// Fatal reports whether the run aborted before producing any files.
func (s *GenerationSummary) Fatal() bool {
	return s.TotalFiles == 0 && len(s.Errors) > 0
}
