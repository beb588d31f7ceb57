package notify

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// DefaultEndpoints are the search-engine ping URLs; the sitemap-index
// URL is appended as the sitemap query parameter.
var DefaultEndpoints = []string{
	"https://www.google.com/ping",
	"https://www.bing.com/ping",
	"https://webmaster.yandexcloud.net/ping",
}

// Notifier pings search engines after a successful generation run.
// Individual engines failing is expected operation, never an error for
// the caller.
type Notifier struct {
	client    *resty.Client
	endpoints []string
}

func NewNotifier(endpoints []string) *Notifier {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}

	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(1).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("User-Agent", "carenavi-sitemapd/1.0")

	return &Notifier{client: client, endpoints: endpoints}
}

// Notify issues one GET per configured engine with the public
// sitemap-index URL. Failures are logged per engine and swallowed.
func (n *Notifier) Notify(ctx context.Context, sitemapIndexURL string) {
	for _, endpoint := range n.endpoints {
		resp, err := n.client.R().
			SetContext(ctx).
			SetQueryParam("sitemap", sitemapIndexURL).
			Get(endpoint)

		if err != nil {
			log.WithError(err).WithField("engine", endpoint).Warn("sitemap ping failed")
			continue
		}
		if resp.IsError() {
			log.WithFields(log.Fields{
				"engine": endpoint,
				"status": resp.StatusCode(),
			}).Warn("sitemap ping rejected")
			continue
		}

		log.WithField("engine", endpoint).Info("sitemap ping accepted")
	}
}

func (n *Notifier) Close() error {
	return n.client.Close()
}
