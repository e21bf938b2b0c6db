// Package catalog talks to the external movie catalog (a TMDB-style
// HTTP API) and resolves item ids to metadata.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinetrack/favorites-api/internal/api/metrics"
	"github.com/cinetrack/favorites-api/internal/core/domain"
)

const defaultRequestTimeout = 5 * time.Second

// Client is the HTTP catalog client. Each lookup is one GET with the
// client-level timeout; retries, if any, belong to the caller's policy
// and are deliberately not implemented here.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Config captures the settings for the catalog origin.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// movieResponse mirrors the catalog's movie payload. The upstream id is
// numeric; internally ids are opaque strings.
type movieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// GetMovie resolves one item id. A catalog 404 becomes
// domain.ErrMovieNotFound; any transport or non-200 failure becomes
// domain.ErrCatalogUnavailable.
func (c *Client) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	u := fmt.Sprintf("%s/movie/%s", c.baseURL, url.PathEscape(id))
	if c.apiKey != "" {
		u += "?api_key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.CatalogLookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogLookupsTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.CatalogLookupsTotal.WithLabelValues("not_found").Inc()
		return nil, domain.ErrMovieNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.CatalogLookupsTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: catalog returned %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	var mr movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		metrics.CatalogLookupsTotal.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrCatalogUnavailable, err)
	}

	metrics.CatalogLookupsTotal.WithLabelValues("ok").Inc()
	return &domain.Movie{
		ID:          strconv.FormatInt(mr.ID, 10),
		Title:       mr.Title,
		Overview:    mr.Overview,
		PosterPath:  mr.PosterPath,
		ReleaseDate: mr.ReleaseDate,
		VoteAverage: mr.VoteAverage,
	}, nil
}
