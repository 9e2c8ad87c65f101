package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

var (
	client = entities.Session{UserID: "client-1", Email: "c@example.com", DisplayName: "Client", Role: entities.RoleClient}
	driver = entities.Session{UserID: "driver-1", Email: "d@example.com", DisplayName: "Driver", Role: entities.RoleDriver}

	burger = entities.LineItem{ProductID: 1, Name: "Classic Burger", Price: decimal.RequireFromString("8.00")}
	cola   = entities.LineItem{ProductID: 10, Name: "Coca-Cola", Price: decimal.RequireFromString("2.50")}

	paris   = entities.Coordinate{Lat: 48.8566, Lng: 2.3522}
	louvre  = entities.Coordinate{Lat: 48.8606, Lng: 2.3376}
	created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// as replaces the session middleware with a fixed session.
func as(s entities.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(entities.WithSession(r.Context(), s)))
		})
	}
}

type initer interface {
	Init(r chi.Router)
}

func serve(h initer, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func order(status entities.Status, driverID string) entities.Order {
	return entities.Order{
		ID:        "order-1",
		UserID:    client.UserID,
		DriverID:  driverID,
		Items:     []entities.LineItem{burger, cola},
		Total:     decimal.RequireFromString("10.50"),
		Status:    status,
		CreatedAt: created,
	}
}
