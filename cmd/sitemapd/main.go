package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/carenavi/sitemapd/config"
	"github.com/carenavi/sitemapd/internal/api"
	"github.com/carenavi/sitemapd/internal/catalog"
	"github.com/carenavi/sitemapd/internal/coordinator"
	"github.com/carenavi/sitemapd/internal/geo"
	"github.com/carenavi/sitemapd/internal/models"
	"github.com/carenavi/sitemapd/internal/notify"
	"github.com/carenavi/sitemapd/internal/publish"
	"github.com/carenavi/sitemapd/internal/runlog"
	"github.com/carenavi/sitemapd/internal/sitemap"
	"github.com/carenavi/sitemapd/internal/storage"
	"github.com/carenavi/sitemapd/internal/urls"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize storage
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize database tables
	if err := store.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	runLog, err := runlog.New(cfg.Generator.RunLogDir)
	if err != nil {
		log.Fatalf("Failed to open run log: %v", err)
	}
	defer runLog.Close()

	reader := catalog.NewReader(store, cfg.Generator.PageSize)
	resolver := geo.NewResolver()
	urlBuilder := urls.NewBuilder(cfg.Site.BaseURL)
	builder := sitemap.NewBuilder(resolver, urlBuilder, cfg.Site.PublicSitemapBase,
		models.Languages, geo.CountryCodes(), models.StaticRoutes)
	publisher := publish.NewLocalPublisher(cfg.Generator.OutputDir)

	var notifier coordinator.EngineNotifier = disabledNotifier{}
	if cfg.Notifier.Enabled {
		n := notify.NewNotifier(cfg.Notifier.Endpoints)
		defer n.Close()
		notifier = n
	}

	indexURL := cfg.Site.PublicSitemapBase + "/global/sitemap-index.xml.gz"
	coord := coordinator.New(reader, builder, publisher, notifier, runLog,
		indexURL, cfg.GetDebounceWindow())

	// Initialize API server
	server := api.NewServer(cfg.Server.Port, coord, cfg.GetRunDeadline())

	// Setup periodic regeneration
	ticker := time.NewTicker(cfg.GetScheduleInterval())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		for {
			select {
			case <-ticker.C:
				log.Info("Starting scheduled sitemap generation...")
				runCtx, runCancel := context.WithTimeout(ctx, cfg.GetRunDeadline())
				coord.RunScheduled(runCtx)
				runCancel()
			case <-ctx.Done():
				return
			}
		}
	}()

	// Start the API server
	go func() {
		log.Infof("Starting API server on port %d", cfg.Server.Port)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for shutdown
	waitForShutdown(cancel, server)
}

func newStore(cfg *config.Config) (storage.CatalogStore, error) {
	if cfg.Database.Driver == "sqlite" {
		return storage.NewSQLiteStore(cfg.Database.URL)
	}
	return storage.NewPostgresStore(cfg.Database.URL)
}

// disabledNotifier stands in when search-engine pings are turned off.
type disabledNotifier struct{}

func (disabledNotifier) Notify(ctx context.Context, sitemapIndexURL string) {
	log.WithField("sitemap", sitemapIndexURL).Debug("search engine notification disabled")
}

func waitForShutdown(cancel context.CancelFunc, server *api.Server) {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Shutting down...")
	cancel()

	// Graceful server shutdown
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down server: %v", err)
	}
	log.Info("Server shut down gracefully")
}
