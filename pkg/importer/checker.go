package importer

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Checker performs HEAD requests against all registered table sources
// and persists their availability.
type Checker struct {
	sources *SourceDB
	logger  *slog.Logger
	client  *http.Client
}

// NewChecker creates a Checker over the given source database.
func NewChecker(sources *SourceDB, logger *slog.Logger) *Checker {
	return &Checker{
		sources: sources,
		logger:  logger,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// CheckAll performs a HEAD request on every source URL and persists
// the result. Failures are logged, not returned; a dead source only
// matters at import time.
func (c *Checker) CheckAll(ctx context.Context) {
	sources, err := c.sources.ListSources()
	if err != nil {
		c.logger.Error("source check: list sources failed", "error", err)
		return
	}

	for _, src := range sources {
		status, checkErr := c.check(ctx, src.SourceURL)
		if err := c.sources.UpdateCheck(src.AdapterID, status, checkErr); err != nil {
			c.logger.Error("source check: persist failed", "adapter", src.AdapterID, "error", err)
		}
		if checkErr != "" {
			c.logger.Warn("source unavailable", "adapter", src.AdapterID, "url", src.SourceURL, "error", checkErr)
		} else {
			c.logger.Info("source available", "adapter", src.AdapterID, "status", status)
		}
	}
}

func (c *Checker) check(ctx context.Context, url string) (int, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err.Error()
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err.Error()
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return resp.StatusCode, http.StatusText(resp.StatusCode)
	}
	return resp.StatusCode, ""
}
