// Package osmclient talks to the Overpass API. Requests are rate limited
// and responses are cached, since public Overpass instances throttle
// aggressive clients.
package osmclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"sailing-venues-backend/lib/metrics"
)

type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Position returns the element coordinates: nodes carry lat/lon directly,
// ways and relations expose the center produced by "out center". Absent
// fields are distinguished from a legitimate 0,0 position.
func (e Element) Position() (lat, lng float64, ok bool) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	return 0, 0, false
}

type Provider interface {
	FetchElements(ctx context.Context, query string) ([]Element, error)
}

var Instance Provider

type Options struct {
	BaseURL       string
	UserAgent     string
	RatePerSecond float64
	RateBurst     int
	CacheSize     int
	CacheTTL      time.Duration
}

func NewProvider(opts Options) {
	Instance = &impl{
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.RateBurst),
		cache:     expirable.NewLRU[string, []Element](opts.CacheSize, nil, opts.CacheTTL),
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: 60 * time.Second,
		},
	}
}

type impl struct {
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	cache     *expirable.LRU[string, []Element]
	client    *http.Client
}

type overpassResponse struct {
	Elements []Element `json:"elements"`
}

const maxAttempts = 3

func (i *impl) FetchElements(ctx context.Context, query string) ([]Element, error) {
	if cached, ok := i.cache.Get(query); ok {
		metrics.OverpassCacheHitsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.OverpassCacheHitsTotal.WithLabelValues("miss").Inc()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := i.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit wait interrupted")
		}
		elements, retryable, err := i.doRequest(ctx, query)
		if err == nil {
			i.cache.Add(query, elements)
			return elements, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		log.
			WithError(err).
			WithField("attempt", attempt).
			Warn("overpass request failed, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 2 * time.Second):
		}
	}
	return nil, lastErr
}

func (i *impl) doRequest(ctx context.Context, query string) (elements []Element, retryable bool, err error) {
	started := time.Now()
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, false, errors.Wrap(err, "overpass request build failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", i.userAgent)

	resp, err := i.client.Do(req)
	if err != nil {
		metrics.ObserveOverpassRequest("error", started)
		return nil, true, errors.Wrap(err, "overpass request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveOverpassRequest(resp.Status, started)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		retryable = resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, errors.Errorf("overpass returned %v: %.200s", resp.Status, string(body))
	}

	var parsed overpassResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.ObserveOverpassRequest("decode_error", started)
		return nil, false, errors.Wrap(err, "overpass response decode failed")
	}
	metrics.ObserveOverpassRequest("ok", started)
	return parsed.Elements, false, nil
}
