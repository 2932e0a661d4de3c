// Package ticketing fetches events from the Discovery API, adapts them
// into the canonical event model, consolidates duplicate shows and
// caches the results.
package ticketing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"datenight/internal/cache"
	appLog "datenight/internal/log"
	"datenight/internal/metrics"
	"datenight/internal/model"
)

// Config describes the upstream endpoint.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Service coordinates one logical query: cache lookup, HTTP GET, decode,
// adapt, deduplicate, cache store. Calls are independent; the cache is
// the only shared state.
type Service struct {
	client *resty.Client
	store  *cache.Cache

	// now is injectable for tests.
	now func() time.Time
}

// New constructs a Service. The cache may be shared with other
// components; it is never written on a failed fetch.
func New(cfg Config, store *cache.Cache) *Service {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetQueryParam("apikey", cfg.APIKey)
	return &Service{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// Query holds the common parameters of an upstream events query.
type Query struct {
	Latitude  float64
	Longitude float64
	Radius    int // miles
	Size      int

	// Optional date bounds for featured queries.
	Start *time.Time
	End   *time.Time
}

func (q Query) params(defaultSize int) map[string]string {
	radius := q.Radius
	if radius <= 0 {
		radius = 25
	}
	size := q.Size
	if size <= 0 {
		size = defaultSize
	}
	return map[string]string{
		"latlong": strconv.FormatFloat(q.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(q.Longitude, 'f', -1, 64),
		"radius": strconv.Itoa(radius),
		"unit":   "miles",
		"size":   strconv.Itoa(size),
		"locale": "*",
	}
}

// FeaturedEvents fetches popular upcoming events near a location,
// optionally bounded to a date range.
func (s *Service) FeaturedEvents(ctx context.Context, q Query) ([]model.Event, error) {
	params := q.params(50)
	params["sort"] = "relevance,desc"

	cacheKey := fmt.Sprintf("featured_%s", params["radius"])
	if q.Start != nil {
		params["startDateTime"] = formatDateTime(*q.Start)
		end := *q.Start
		if q.End != nil {
			params["endDateTime"] = formatDateTime(*q.End)
			end = *q.End
		}
		cacheKey = fmt.Sprintf("featured_%s_%s_%s",
			params["radius"], formatDate(*q.Start), formatDate(end))
	}

	return s.fetchEvents(ctx, params, cacheKey)
}

// TonightEvents fetches events happening today near a location.
func (s *Service) TonightEvents(ctx context.Context, q Query) ([]model.Event, error) {
	now := s.now()
	params := q.params(20)
	params["sort"] = "date,asc"
	params["startDateTime"] = formatDate(now) + "T00:00:00Z"
	params["endDateTime"] = formatDate(now.AddDate(0, 0, 1)) + "T00:00:00Z"

	return s.fetchEvents(ctx, params, "tonight")
}

// EventsByCategory fetches events of one category near a location.
// Categories with no upstream classification (All, Food, Classes) return
// an empty result without a network call.
func (s *Service) EventsByCategory(ctx context.Context, cat model.Category, q Query) ([]model.Event, error) {
	classification, ok := classificationFor(cat)
	if !ok {
		return nil, nil
	}

	params := q.params(20)
	params["sort"] = "date,asc"
	params["classificationName"] = classification

	return s.fetchEvents(ctx, params, "cat_"+string(cat))
}

// SearchEvents fetches events matching a free-text keyword. Search
// results are never cached.
func (s *Service) SearchEvents(ctx context.Context, keyword string, q Query) ([]model.Event, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrInvalidRequest
	}

	params := q.params(20)
	params["sort"] = "relevance,desc"
	params["keyword"] = keyword

	return s.fetchEvents(ctx, params, "")
}

// ClearCache drops all cached result sets.
func (s *Service) ClearCache() {
	s.store.Clear()
}

// fetchEvents is the single fetch path: cache check, GET /events.json,
// status mapping, decode, adapt, deduplicate, cache store. An empty
// cacheKey bypasses the cache entirely. The cache is only written after
// a fully successful fetch.
func (s *Service) fetchEvents(ctx context.Context, params map[string]string, cacheKey string) ([]model.Event, error) {
	if cacheKey != "" {
		if events, ok := s.store.Get(cacheKey); ok {
			metrics.CacheHit()
			appLog.Debug("ticketing cache hit", "key", cacheKey, "count", len(events))
			return events, nil
		}
		metrics.CacheMiss()
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/events.json")
	if err != nil {
		metrics.UpstreamRequest(0)
		return nil, fmt.Errorf("ticketing: request: %w", err)
	}
	metrics.UpstreamRequest(resp.StatusCode())

	switch code := resp.StatusCode(); {
	case code == 200:
	case code == 429:
		return nil, ErrRateLimited
	default:
		return nil, &HTTPError{Code: code}
	}

	var decoded apiResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, &DecodeError{Err: err}
	}

	var raw []model.Event
	if decoded.Embedded != nil {
		fallback := s.now()
		raw = make([]model.Event, 0, len(decoded.Embedded.Events))
		for _, entry := range decoded.Embedded.Events {
			raw = append(raw, entry.toEvent(fallback))
		}
	}
	events := model.Deduplicate(raw)

	if cacheKey != "" {
		s.store.Put(cacheKey, events)
	}
	appLog.Info("ticketing fetch completed", "key", cacheKey, "raw", len(raw), "consolidated", len(events))
	return events, nil
}

// classificationFor maps an app category onto an upstream classification
// name. Food and Classes have no usable upstream coverage.
func classificationFor(cat model.Category) (string, bool) {
	switch cat {
	case model.CategoryConcerts:
		return "Music", true
	case model.CategoryComedy:
		return "Comedy", true
	case model.CategoryTheater:
		return "Theatre", true
	case model.CategoryOutdoors:
		return "Sports", true
	default:
		return "", false
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
