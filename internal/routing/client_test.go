package routing

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(logger, config.Routing{
		OSRMURL:     srv.URL + "/",
		GeocoderURL: srv.URL,
		UserAgent:   "delivery-test",
		Timeout:     time.Second,
	}, config.Cache{Capacity: 16, TTL: time.Minute})
	c.retry.InitialDelay = time.Millisecond
	c.retry.MaxDelay = time.Millisecond
	return c, &hits
}

func TestClient_Route(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/v1/driving/-120.2,38.5;-126.453,43.252", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		assert.Equal(t, "polyline", r.URL.Query().Get("geometries"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":"Ok","routes":[{"geometry":"_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@","distance":1234.5,"duration":90}]}`)
	})

	from := entities.Coordinate{Lat: 38.5, Lng: -120.2}
	to := entities.Coordinate{Lat: 43.252, Lng: -126.453}

	route, err := c.Route(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, []entities.Coordinate{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}, route.Points)
	assert.Equal(t, 1234.5, route.Distance)
	assert.Equal(t, 90*time.Second, route.Duration)

	_, err = c.Route(context.Background(), from, to)
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_RouteErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantErr  error
		wantHits int32
	}{
		{
			name: "no route",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"code":"NoRoute","message":"Impossible route"}`)
			},
			wantErr:  ErrNoRoute,
			wantHits: 1,
		},
		{
			name: "empty routes",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"code":"Ok","routes":[]}`)
			},
			wantErr:  ErrNoRoute,
			wantHits: 1,
		},
		{
			name: "server down",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr:  ErrUpstream,
			wantHits: 3,
		},
		{
			name: "broken geometry",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"code":"Ok","routes":[{"geometry":"_"}]}`)
			},
			wantErr:  ErrUpstream,
			wantHits: 1,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `<html>`)
			},
			wantErr:  ErrUpstream,
			wantHits: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, hits := newTestClient(t, tc.handler)
			_, err := c.Route(context.Background(), entities.Coordinate{Lat: 1, Lng: 2}, entities.Coordinate{Lat: 3, Lng: 4})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantHits, hits.Load())
		})
	}
}

func TestClient_RouteRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"code":"Ok","routes":[{"geometry":"??","distance":0,"duration":0}]}`)
	})

	route, err := c.Route(context.Background(), entities.Coordinate{}, entities.Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, []entities.Coordinate{{Lat: 0, Lng: 0}}, route.Points)
	assert.EqualValues(t, 2, hits.Load())
}

func TestClient_Geocode(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "delivery-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		switch r.URL.Query().Get("q") {
		case "1 Rue de Rivoli, Paris":
			_, _ = io.WriteString(w, `[{"lat":"48.8559","lon":"2.3580","display_name":"Rue de Rivoli"}]`)
		case "broken":
			_, _ = io.WriteString(w, `[{"lat":"north","lon":"2"}]`)
		default:
			_, _ = io.WriteString(w, `[]`)
		}
	})
	ctx := context.Background()

	got, err := c.Geocode(ctx, "1 Rue de Rivoli, Paris")
	require.NoError(t, err)
	assert.Equal(t, entities.Coordinate{Lat: 48.8559, Lng: 2.358}, got)

	// cached, key is case-insensitive
	_, err = c.Geocode(ctx, "1 RUE DE RIVOLI, PARIS ")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())

	_, err = c.Geocode(ctx, "nowhere")
	assert.ErrorIs(t, err, entities.ErrAddressNotGeocoded)

	_, err = c.Geocode(ctx, "broken")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = c.Geocode(ctx, "   ")
	assert.ErrorIs(t, err, entities.ErrAddressNotGeocoded)
	assert.EqualValues(t, 3, hits.Load())
}

func TestClient_GeocodeRejected(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "missing user agent")
	})

	_, err := c.Geocode(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.NotErrorIs(t, err, entities.ErrAddressNotGeocoded)
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_GeocodeSharesConcurrentLookups(t *testing.T) {
	release := make(chan struct{})
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = io.WriteString(w, `[{"lat":"1","lon":"2"}]`)
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Geocode(context.Background(), "Paris")
			assert.NoError(t, err)
			assert.Equal(t, entities.Coordinate{Lat: 1, Lng: 2}, got)
		}()
	}

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_SharedLookupOutlivesCancelledCaller(t *testing.T) {
	release := make(chan struct{})
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = io.WriteString(w, `[{"lat":"1","lon":"2"}]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Geocode(ctx, "Paris")
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, time.Millisecond)

	second := make(chan entities.Coordinate, 1)
	go func() {
		got, err := c.Geocode(context.Background(), "Paris")
		assert.NoError(t, err)
		second <- got
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, ErrUpstream)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting")
	}

	close(release)
	select {
	case got := <-second:
		assert.Equal(t, entities.Coordinate{Lat: 1, Lng: 2}, got)
	case <-time.After(time.Second):
		t.Fatal("shared lookup did not finish")
	}
	assert.EqualValues(t, 1, hits.Load())
}

func TestClient_GeocodeRejectsNonFiniteCoordinates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"lat":"NaN","lon":"Inf"}]`)
	})

	_, err := c.Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrUpstream)
}
