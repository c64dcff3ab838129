// Package stockphoto implements the stock-photo search contract against
// the Unsplash API, with a client-side TTL cache keyed by query text.
package stockphoto

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventify/config"
	"eventify/internal/domain/service"
	"eventify/internal/errors"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultBaseURL  = "https://api.unsplash.com"
	defaultPerPage  = 12
	defaultCacheTTL = 24 * time.Hour
)

type unsplashService struct {
	httpClient *http.Client
	cache      *gocache.Cache
	baseURL    string
	accessKey  string
	perPage    int
}

// searchResponse mirrors the slice of the Unsplash search payload this
// service reads.
type searchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		URLs        struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"results"`
}

// NewUnsplashService creates a stock-photo search service with a 24h
// per-query result cache (TTL overridable through config).
func NewUnsplashService(cfg *config.UnsplashConfig, httpClient *http.Client) service.StockPhotoService {
	ttl := defaultCacheTTL
	if cfg.CacheTTL > 0 {
		ttl = cfg.CacheTTL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &unsplashService{
		httpClient: httpClient,
		cache:      gocache.New(ttl, ttl),
		baseURL:    defaultBaseURL,
		accessKey:  cfg.AccessKey,
		perPage:    defaultPerPage,
	}
}

// Search returns candidate images for the query, serving repeats from
// the cache within the TTL window.
func (s *unsplashService) Search(ctx context.Context, query string) ([]service.StockPhoto, error) {
	if cached, ok := s.cache.Get(query); ok {
		return cached.([]service.StockPhoto), nil
	}

	endpoint := s.baseURL + "/search/photos?" + url.Values{
		"query":    {query},
		"per_page": {strconv.Itoa(s.perPage)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build stock photo request")
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "stock photo search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("stock photo search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode stock photo response")
	}

	photos := make([]service.StockPhoto, 0, len(payload.Results))
	for _, result := range payload.Results {
		photos = append(photos, service.StockPhoto{
			ID:          result.ID,
			Description: result.Description,
			URL:         result.URLs.Regular,
			ThumbURL:    result.URLs.Thumb,
			Credit:      result.User.Name,
		})
	}

	s.cache.Set(query, photos, gocache.DefaultExpiration)

	return photos, nil
}
