package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/cache"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/polyline"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNoRoute  = errors.New("no route found")
	ErrUpstream = errors.New("routing upstream failed")

	// не повторяется
	errRejected = fmt.Errorf("%w: request rejected", ErrUpstream)
)

// OSRM encodes geometries with precision 5.
const routePrecision = 5

type Route struct {
	Geometry string
	Points   []entities.Coordinate
	Distance float64 // метры
	Duration time.Duration
}

// Client talks to an OSRM router and a Nominatim geocoder. Responses are
// cached and identical concurrent lookups share one upstream request.
type Client struct {
	logger      *slog.Logger
	http        *http.Client
	osrmURL     string
	geocoderURL string
	userAgent   string
	retry       utils.RetryConfig
	// общий запрос живёт независимо от того, кто его начал
	lookupTimeout time.Duration

	routes *cache.LRU[string, Route]
	places *cache.LRU[string, entities.Coordinate]
	group  singleflight.Group
}

func NewClient(logger *slog.Logger, cfg config.Routing, cacheCfg config.Cache) *Client {
	retry := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	}
	return &Client{
		logger:        logger.With(slog.String("service", "routing")),
		http:          &http.Client{Timeout: cfg.Timeout},
		osrmURL:       strings.TrimRight(cfg.OSRMURL, "/"),
		geocoderURL:   strings.TrimRight(cfg.GeocoderURL, "/"),
		userAgent:     cfg.UserAgent,
		retry:         retry,
		lookupTimeout: time.Duration(retry.MaxAttempts) * (cfg.Timeout + retry.MaxDelay),
		routes:        cache.NewLRU[string, Route](cacheCfg.Capacity, cacheCfg.TTL),
		places:        cache.NewLRU[string, entities.Coordinate](cacheCfg.Capacity, cacheCfg.TTL),
	}
}

// Start runs the cache janitors until ctx is done.
func (c *Client) Start(ctx context.Context) error {
	if err := c.routes.Start(ctx); err != nil {
		return err
	}
	return c.places.Start(ctx)
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route returns the driving route between two points.
func (c *Client) Route(ctx context.Context, from, to entities.Coordinate) (Route, error) {
	key := fmt.Sprintf("%s;%s", lonLat(from), lonLat(to))
	if r, ok := c.routes.Get(key); ok {
		cacheHits.WithLabelValues("route").Inc()
		return r, nil
	}

	v, err := c.shared(ctx, "route:"+key, func(ctx context.Context) (any, error) {
		var resp osrmResponse
		endpoint := fmt.Sprintf("%s/route/v1/driving/%s?overview=full&geometries=polyline", c.osrmURL, key)
		if err := c.getJSON(ctx, "route", endpoint, &resp); err != nil {
			return Route{}, err
		}
		if resp.Code != "Ok" || len(resp.Routes) == 0 {
			return Route{}, fmt.Errorf("%w: %s %s", ErrNoRoute, resp.Code, resp.Message)
		}

		best := resp.Routes[0]
		points, err := polyline.Decode(best.Geometry, routePrecision)
		if err != nil {
			return Route{}, fmt.Errorf("%w: bad geometry: %w", ErrUpstream, err)
		}
		route := Route{
			Geometry: best.Geometry,
			Points:   make([]entities.Coordinate, len(points)),
			Distance: best.Distance,
			Duration: time.Duration(best.Duration * float64(time.Second)),
		}
		for i, p := range points {
			route.Points[i] = entities.Coordinate{Lat: p.Lat, Lng: p.Lng}
		}
		c.routes.Set(key, route)
		return route, nil
	})
	if err != nil {
		return Route{}, err
	}
	return v.(Route), nil
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-form address. ErrAddressNotGeocoded means the
// geocoder knows no such place.
func (c *Client) Geocode(ctx context.Context, query string) (entities.Coordinate, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return entities.Coordinate{}, entities.ErrAddressNotGeocoded
	}
	if p, ok := c.places.Get(key); ok {
		cacheHits.WithLabelValues("geocode").Inc()
		return p, nil
	}

	v, err := c.shared(ctx, "geocode:"+key, func(ctx context.Context) (any, error) {
		params := url.Values{}
		params.Set("format", "json")
		params.Set("limit", "1")
		params.Set("q", query)

		var places []place
		if err := c.getJSON(ctx, "geocode", c.geocoderURL+"/search?"+params.Encode(), &places); err != nil {
			return entities.Coordinate{}, err
		}
		if len(places) == 0 {
			return entities.Coordinate{}, entities.ErrAddressNotGeocoded
		}

		lat, err := strconv.ParseFloat(places[0].Lat, 64)
		if err != nil {
			return entities.Coordinate{}, fmt.Errorf("%w: bad latitude %q", ErrUpstream, places[0].Lat)
		}
		lng, err := strconv.ParseFloat(places[0].Lon, 64)
		if err != nil {
			return entities.Coordinate{}, fmt.Errorf("%w: bad longitude %q", ErrUpstream, places[0].Lon)
		}
		coord := entities.Coordinate{Lat: lat, Lng: lng}
		if !coord.Valid() {
			return entities.Coordinate{}, fmt.Errorf("%w: bad coordinate %q,%q", ErrUpstream, places[0].Lat, places[0].Lon)
		}
		c.places.Set(key, coord)
		return coord, nil
	})
	if err != nil {
		return entities.Coordinate{}, err
	}
	return v.(entities.Coordinate), nil
}

// shared runs fn once for concurrent callers of the same key. fn is detached
// from the caller that started it, so a cancelled caller only stops waiting.
func (c *Client) shared(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
		defer cancel()
		return fn(lookupCtx)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrUpstream, ctx.Err())
	}
}

// getJSON retries transport failures and 5xx answers.
func (c *Client) getJSON(ctx context.Context, api, endpoint string, dst any) error {
	err := utils.Retry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", errRejected, err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			upstreamRequests.WithLabelValues(api, "error").Inc()
			return fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		defer resp.Body.Close()
		upstreamRequests.WithLabelValues(api, strconv.Itoa(resp.StatusCode)).Inc()

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %s", ErrUpstream, resp.Status)
		// OSRM отвечает 400 с кодом ошибки в теле
		case resp.StatusCode >= http.StatusBadRequest && api != "route":
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("%w: %s: %s", errRejected, resp.Status, strings.TrimSpace(string(body)))
		}

		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("%w: failed to decode response: %w", errRejected, err)
		}
		return nil
	}, errRejected)
	if err != nil {
		c.logger.Error("upstream request failed", "api", api, "err", err)
	}
	return err
}

func lonLat(c entities.Coordinate) string {
	return strconv.FormatFloat(c.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}
