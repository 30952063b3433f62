package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/castwave/castwave/internal/domain"
)

const (
	defaultBaseURL = "https://podcast-api.netlify.app"
	defaultTimeout = 30 * time.Second
	userAgent      = "Castwave/1.0"
)

// Client implements domain.CatalogClient against the public podcast API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client. An empty baseURL selects the
// public endpoint; a zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against the API and returns the response body.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("api request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "url", reqURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrShowNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("api request error", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// FetchCatalog returns the full show list, enriched at ingestion time.
func (c *Client) FetchCatalog(ctx context.Context) ([]*domain.Show, error) {
	body, err := c.doRequest(ctx, "/")
	if err != nil {
		return nil, err
	}

	var records []showRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	shows := make([]*domain.Show, 0, len(records))
	for _, rec := range records {
		shows = append(shows, mapShow(rec))
	}

	c.logger.Info("fetched catalog", "count", len(shows))
	return shows, nil
}

// FetchShowDetail returns the season/episode tree for one show.
func (c *Client) FetchShowDetail(ctx context.Context, showID string) ([]domain.Season, error) {
	body, err := c.doRequest(ctx, "/id/"+showID)
	if err != nil {
		return nil, err
	}

	var detail showDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse show detail: %w", err)
	}

	c.logger.Debug("fetched show detail", "showID", showID, "seasons", len(detail.Seasons))
	return mapSeasons(detail), nil
}
