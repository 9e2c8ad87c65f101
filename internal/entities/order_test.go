package entities_test

import (
	"math"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Valid(t *testing.T) {
	testCases := []struct {
		name  string
		coord entities.Coordinate
		want  bool
	}{
		{"inside bounds", entities.Coordinate{Lat: 52.23, Lng: 21.01}, true},
		{"on the edges", entities.Coordinate{Lat: -90, Lng: 180}, true},
		{"latitude too large", entities.Coordinate{Lat: 90.0001, Lng: 0}, false},
		{"longitude too small", entities.Coordinate{Lat: 0, Lng: -180.5}, false},
		{"NaN latitude", entities.Coordinate{Lat: math.NaN(), Lng: 0}, false},
		{"NaN longitude", entities.Coordinate{Lat: 0, Lng: math.NaN()}, false},
		{"positive infinity", entities.Coordinate{Lat: math.Inf(1), Lng: 0}, false},
		{"negative infinity", entities.Coordinate{Lat: 0, Lng: math.Inf(-1)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coord.Valid())
		})
	}
}

func TestOrder_Validate(t *testing.T) {
	base := func(status entities.Status, driverID string) entities.Order {
		return entities.Order{
			ID:        "o1",
			UserID:    "u1",
			DriverID:  driverID,
			Status:    status,
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	testCases := []struct {
		name    string
		order   entities.Order
		wantErr bool
	}{
		{"created without driver", base(entities.StatusCreated, ""), false},
		{"created with driver", base(entities.StatusCreated, "d1"), true},
		{"preparing with driver", base(entities.StatusPreparing, "d1"), false},
		{"preparing without driver", base(entities.StatusPreparing, ""), true},
		{"delivered without driver", base(entities.StatusDelivered, ""), true},
		{"canceled before accept", base(entities.StatusCanceled, ""), false},
		{"canceled after accept", base(entities.StatusCanceled, "d1"), false},
		{"unknown status", base("LOST", "d1"), true},
		{"missing id", func() entities.Order { o := base(entities.StatusCreated, ""); o.ID = ""; return o }(), true},
		{
			name: "location without driver",
			order: func() entities.Order {
				o := base(entities.StatusCanceled, "")
				o.DriverLocation = &entities.Coordinate{Lat: 1, Lng: 1}
				return o
			}(),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrMalformedRecord)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrder_VisibleTo(t *testing.T) {
	client := entities.Session{UserID: "u1", Role: entities.RoleClient}
	driver := entities.Session{UserID: "d1", Role: entities.RoleDriver}
	otherDriver := entities.Session{UserID: "d2", Role: entities.RoleDriver}

	available := entities.Order{ID: "o1", UserID: "u1", Status: entities.StatusCreated}
	assigned := entities.Order{ID: "o2", UserID: "u1", DriverID: "d1", Status: entities.StatusPreparing}
	foreign := entities.Order{ID: "o3", UserID: "u2", Status: entities.StatusCreated}

	testCases := []struct {
		name    string
		order   entities.Order
		session entities.Session
		want    bool
	}{
		{"client sees own order", available, client, true},
		{"client does not see foreign order", foreign, client, false},
		{"driver sees available order", foreign, otherDriver, true},
		{"driver sees assigned order", assigned, driver, true},
		{"driver does not see order taken by another", assigned, otherDriver, false},
		{"unknown role sees nothing", available, entities.Session{UserID: "u1"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.VisibleTo(tc.session))
		})
	}
}
