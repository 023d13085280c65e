// Package provider enriches unmatched series titles through TMDB. Lookup
// is optional: without an API key no provider is constructed and matching
// simply runs without enrichment.
package provider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	tmdb "github.com/ryanbradynd05/go-tmdb"
)

var (
	ErrNoResults      = errors.New("no results found")
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrRateLimited    = errors.New("rate limited")
	ErrAPIUnavailable = errors.New("API unavailable")
)

// SeriesInfo is the slice of TMDB data the matcher cares about.
type SeriesInfo struct {
	ID           int
	Name         string
	OriginalName string
	FirstAirYear string
	LocalTitle   string
}

// TMDBClient is the part of *tmdb.TMDb this package calls, split out so
// tests can substitute a canned client.
type TMDBClient interface {
	SearchTv(name string, options map[string]string) (*tmdb.TvSearchResults, error)
}

// TMDBProvider wraps the TMDB client with response caching; feeds resolve
// the same unmatched titles poll after poll and the API is rate limited.
type TMDBProvider struct {
	client   TMDBClient
	cache    *cache.Cache
	language string
}

// NewTMDBProvider creates a provider for the given API key.
func NewTMDBProvider(apiKey, language string) (*TMDBProvider, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}
	if language == "" {
		language = "zh-CN"
	}

	client := tmdb.Init(tmdb.Config{APIKey: apiKey})

	return &TMDBProvider{
		client:   client,
		cache:    cache.New(time.Hour, 10*time.Minute),
		language: language,
	}, nil
}

// SearchSeries resolves a series title to its best TMDB match, the first
// search result.
func (p *TMDBProvider) SearchSeries(title string) (*SeriesInfo, error) {
	if title == "" {
		return nil, errors.New("series title is required")
	}

	cacheKey := fmt.Sprintf("tv:%s:%s", title, p.language)
	if cached, found := p.cache.Get(cacheKey); found {
		if info, ok := cached.(*SeriesInfo); ok {
			return info, nil
		}
	}

	options := map[string]string{
		"language": p.language,
	}

	results, err := p.client.SearchTv(title, options)
	if err != nil {
		return nil, p.mapError(err)
	}
	if results == nil || len(results.Results) == 0 {
		return nil, ErrNoResults
	}

	show := results.Results[0]
	info := &SeriesInfo{
		ID:           show.ID,
		Name:         show.Name,
		OriginalName: show.OriginalName,
		LocalTitle:   title,
	}
	if len(show.FirstAirDate) >= 4 {
		info.FirstAirYear = show.FirstAirDate[:4]
	}

	p.cache.Set(cacheKey, info, cache.DefaultExpiration)
	return info, nil
}

func (p *TMDBProvider) mapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "unauthorized") {
		return ErrInvalidAPIKey
	}
	if strings.Contains(errStr, "429") || strings.Contains(errStr, "rate limit") {
		return ErrRateLimited
	}
	if strings.Contains(errStr, "503") || strings.Contains(errStr, "unavailable") {
		return ErrAPIUnavailable
	}

	return fmt.Errorf("TMDB API error: %w", err)
}

// SetClient sets the TMDB client (for testing)
func (p *TMDBProvider) SetClient(client TMDBClient) {
	p.client = client
}
