package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/carenavi/sitemapd/internal/models"
	"github.com/carenavi/sitemapd/internal/publish"
	"github.com/carenavi/sitemapd/internal/sitemap"
)

const DefaultDebounce = 5 * time.Minute

type catalogLoader interface {
	LoadEligible(ctx context.Context) ([]models.CatalogRecord, error)
}

type treeBuilder interface {
	BuildAll(records []models.CatalogRecord) *sitemap.Result
}

// EngineNotifier pings search engines after a publishable run. It is
// satisfied by notify.Notifier and by the disabled stand-in.
type EngineNotifier interface {
	Notify(ctx context.Context, sitemapIndexURL string)
}

type summarySink interface {
	Append(summary *models.GenerationSummary)
}

// Coordinator funnels all three trigger modes into one full generation
// run. It owns the debounce timestamp, and serializes runs with its own
// mutex: this host model keeps the process alive with HTTP and the
// scheduler able to fire concurrently, so mutual exclusion cannot be
// delegated to the platform.
type Coordinator struct {
	loader    catalogLoader
	builder   treeBuilder
	publisher publish.Publisher
	notifier  EngineNotifier
	runLog    summarySink

	indexURL string
	debounce time.Duration
	now      func() time.Time

	runMu sync.Mutex

	stateMu        sync.Mutex
	lastRunStarted time.Time
	lastSummary    *models.GenerationSummary
}

func New(loader catalogLoader, builder treeBuilder, publisher publish.Publisher, notifier EngineNotifier, runLog summarySink, indexURL string, debounce time.Duration) *Coordinator {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Coordinator{
		loader:    loader,
		builder:   builder,
		publisher: publisher,
		notifier:  notifier,
		runLog:    runLog,
		indexURL:  indexURL,
		debounce:  debounce,
		now:       time.Now,
	}
}

// RunManual executes a full run immediately, bypassing the debounce.
func (c *Coordinator) RunManual(ctx context.Context) *models.GenerationSummary {
	return c.executeFullRun(ctx, models.TriggerManual)
}

// RunScheduled executes a full run immediately, bypassing the debounce.
func (c *Coordinator) RunScheduled(ctx context.Context) *models.GenerationSummary {
	return c.executeFullRun(ctx, models.TriggerScheduled)
}

// RunOnChange reacts to a catalog write. It returns nil without running
// when the written record is not itself publishable, or when a run
// started inside the debounce window. A record turning ineligible does
// not trigger regeneration; the stale entry lasts until the next
// scheduled run.
func (c *Coordinator) RunOnChange(ctx context.Context, record *models.CatalogRecord) *models.GenerationSummary {
	if record == nil || !record.Eligible() || !record.IsApproved() {
		log.WithField("record", recordID(record)).Info("change ignored, record not publishable")
		return nil
	}

	c.stateMu.Lock()
	elapsed := c.now().Sub(c.lastRunStarted)
	c.stateMu.Unlock()
	if elapsed < c.debounce {
		log.WithFields(log.Fields{
			"record":  record.ID,
			"elapsed": elapsed.Round(time.Second),
		}).Info("change ignored, inside debounce window")
		return nil
	}

	return c.executeFullRun(ctx, models.TriggerOnChange)
}

// executeFullRun is the single implementation behind every trigger.
// Nothing propagates past it: every terminal state, including a fatal
// catalog load failure, comes back as a GenerationSummary and exactly
// one summary is appended to the run log.
func (c *Coordinator) executeFullRun(ctx context.Context, trigger models.Trigger) *models.GenerationSummary {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	started := c.now()
	c.stateMu.Lock()
	c.lastRunStarted = started
	c.stateMu.Unlock()

	summary := &models.GenerationSummary{
		RunID:     uuid.New().String(),
		Trigger:   trigger,
		StartedAt: started,
	}

	log.WithFields(log.Fields{
		"runId":   summary.RunID,
		"trigger": trigger,
	}).Info("generation run started")

	records, err := c.loader.LoadEligible(ctx)
	if err != nil {
		summary.Errors = []string{fmt.Sprintf("catalog load: %v", err)}
		summary.DurationMs = c.now().Sub(started).Milliseconds()
		log.WithField("runId", summary.RunID).WithError(err).Error("generation run aborted")
		c.runLog.Append(summary)
		c.setLastSummary(summary)
		return summary
	}

	result := c.builder.BuildAll(records)

	published := 0
	var totalSize int64
	for _, file := range result.Files {
		if err := c.publisher.Publish(file); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("publish %s/%s: %v", file.RelativePath, file.FileName, err))
			continue
		}
		published++
		totalSize += int64(file.CompressedSize)
	}

	if published > 0 {
		c.notifier.Notify(ctx, c.indexURL)
	}

	summary.Level1Count = result.Level1Count
	summary.Level2Count = result.Level2Count
	summary.TotalFiles = published
	summary.TotalSizeBytes = totalSize
	summary.DurationMs = c.now().Sub(started).Milliseconds()
	summary.Errors = result.Errors

	c.runLog.Append(summary)
	c.setLastSummary(summary)

	log.WithFields(log.Fields{
		"runId":    summary.RunID,
		"files":    summary.TotalFiles,
		"errors":   len(summary.Errors),
		"duration": summary.DurationMs,
	}).Info("generation run finished")

	return summary
}

func (c *Coordinator) setLastSummary(summary *models.GenerationSummary) {
	c.stateMu.Lock()
	c.lastSummary = summary
	c.stateMu.Unlock()
}

// LastSummary returns the most recent run's summary, or nil before the
// first run of the process lifetime.
func (c *Coordinator) LastSummary() *models.GenerationSummary {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.lastSummary
}

func recordID(record *models.CatalogRecord) string {
	if record == nil {
		return ""
	}
	return record.ID
}
