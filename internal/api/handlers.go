package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carenavi/sitemapd/internal/coordinator"
	"github.com/carenavi/sitemapd/internal/models"
)

type Handler struct {
	coordinator *coordinator.Coordinator
	runDeadline time.Duration
}

func NewHandler(coord *coordinator.Coordinator, runDeadline time.Duration) *Handler {
	return &Handler{
		coordinator: coord,
		runDeadline: runDeadline,
	}
}

// recordChangePayload carries the catalog write that fired the webhook.
// Only the after snapshot decides whether a run is triggered.
type recordChangePayload struct {
	Before *models.CatalogRecord `json:"before"`
	After  *models.CatalogRecord `json:"after"`
}

type summaryResponse struct {
	Level1Count int      `json:"level1Count"`
	Level2Count int      `json:"level2Count"`
	TotalFiles  int      `json:"totalFiles"`
	TotalSize   int64    `json:"totalSize"`
	Duration    int64    `json:"duration"`
	Errors      []string `json:"errors,omitempty"`
}

func toSummaryResponse(summary *models.GenerationSummary) summaryResponse {
	return summaryResponse{
		Level1Count: summary.Level1Count,
		Level2Count: summary.Level2Count,
		TotalFiles:  summary.TotalFiles,
		TotalSize:   summary.TotalSizeBytes,
		Duration:    summary.DurationMs,
		Errors:      summary.Errors,
	}
}

// GenerateSitemaps runs a full generation synchronously and reports the
// run's summary. Partial failures still come back as 200 with the error
// list; only a run that produced no files at all is a server error.
func (h *Handler) GenerateSitemaps(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.runDeadline)
	defer cancel()

	summary := h.coordinator.RunManual(ctx)

	if summary.Fatal() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     summary.Errors[0],
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Sitemap generation completed",
		"timestamp": time.Now().Format(time.RFC3339),
		"sitemaps":  toSummaryResponse(summary),
	})
}

// RecordChanged accepts a catalog change webhook. The response is 202
// whether or not a run actually started; debounced and ineligible
// changes are not errors for the caller.
func (h *Handler) RecordChanged(c *gin.Context) {
	var payload recordChangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"error":     "Invalid request body: " + err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.runDeadline)
	defer cancel()

	summary := h.coordinator.RunOnChange(ctx, payload.After)

	response := gin.H{
		"success":   true,
		"triggered": summary != nil,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if summary != nil {
		response["sitemaps"] = toSummaryResponse(summary)
	}

	c.JSON(http.StatusAccepted, response)
}

// LatestRun reports the most recent generation summary of this process.
func (h *Handler) LatestRun(c *gin.Context) {
	summary := h.coordinator.LastSummary()
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success":   false,
			"error":     "No generation run has completed yet",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"runId":     summary.RunID,
		"trigger":   summary.Trigger,
		"startedAt": summary.StartedAt.Format(time.RFC3339),
		"sitemaps":  toSummaryResponse(summary),
	})
}
