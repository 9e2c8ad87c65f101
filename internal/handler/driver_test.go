package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/food-delivery-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var trackingCfg = config.Tracking{SimulationSteps: 20, SimulationInterval: 500 * time.Millisecond}

type driverMocks struct {
	orders  *mocks.MockOrderService
	router  *mocks.MockRouter
	tracker *mocks.MockTracker
}

func newDriverHandler(t *testing.T, s entities.Session) (*handler.DriverHandler, driverMocks) {
	m := driverMocks{
		orders:  mocks.NewMockOrderService(t),
		router:  mocks.NewMockRouter(t),
		tracker: mocks.NewMockTracker(t),
	}
	return handler.NewDriverHandler(newLogger(), m.orders, m.router, m.tracker, trackingCfg, as(s)), m
}

func TestDriverHandler_RequiresDriver(t *testing.T) {
	h, _ := newDriverHandler(t, client)
	rr := serve(h, http.MethodGet, "/driver/orders/available", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestDriverHandler_Lists(t *testing.T) {
	testCases := []struct {
		path   string
		filter entities.OrderFilter
	}{
		{path: "/driver/orders/available", filter: entities.OrderFilter{Statuses: []entities.Status{entities.StatusCreated}}},
		{path: "/driver/orders/active", filter: entities.OrderFilter{DriverID: driver.UserID, Statuses: entities.DriverActiveStatuses}},
		{path: "/driver/orders/history", filter: entities.OrderFilter{DriverID: driver.UserID}},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			m.orders.EXPECT().ListOrders(mock.Anything, tc.filter).Return([]entities.Order{order(entities.StatusCreated, "")}, nil).Once()

			rr := serve(h, http.MethodGet, tc.path, "")
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"id":"order-1"`)
		})
	}
}

func TestDriverHandler_Accept(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "taken by another driver", err: entities.ErrInvalidTransition, wantStatus: http.StatusConflict},
		{name: "missing", err: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			m.orders.EXPECT().AcceptOrder(mock.Anything, "order-1", driver.UserID).Return(order(entities.StatusPreparing, driver.UserID), tc.err).Once()

			rr := serve(h, http.MethodPost, "/driver/orders/order-1/accept", "")
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestDriverHandler_AdvanceStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m driverMocks)
		wantStatus   int
	}{
		{
			name: "on the way",
			body: `{"status":"ON_THE_WAY"}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().AdvanceStatus(mock.Anything, "order-1", driver.UserID, entities.StatusPreparing, entities.StatusOnTheWay).
					Return(order(entities.StatusOnTheWay, driver.UserID), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "delivered stops tracking",
			body: `{"status":"DELIVERED"}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().AdvanceStatus(mock.Anything, "order-1", driver.UserID, entities.StatusOnTheWay, entities.StatusDelivered).
					Return(order(entities.StatusDelivered, driver.UserID), nil).Once()
				m.tracker.EXPECT().Stop("order-1").Return(true).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit expected status",
			body: `{"status":"DELIVERED","expected":"PREPARING"}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().AdvanceStatus(mock.Anything, "order-1", driver.UserID, entities.StatusPreparing, entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "backwards",
			body:         `{"status":"PREPARING"}`,
			mockBehavior: func(m driverMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			tc.mockBehavior(m)

			rr := serve(h, http.MethodPost, "/driver/orders/order-1/status", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestDriverHandler_ReportLocation(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m driverMocks)
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"lat":48.8566,"lng":2.3522}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().ReportDriverLocation(mock.Anything, "order-1", driver.UserID, paris).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "out of range",
			body:         `{"lat":91,"lng":0}`,
			mockBehavior: func(m driverMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "after delivery",
			body: `{"lat":1,"lng":1}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().ReportDriverLocation(mock.Anything, "order-1", driver.UserID, mock.Anything).Return(entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			tc.mockBehavior(m)

			rr := serve(h, http.MethodPost, "/driver/orders/order-1/location", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestDriverHandler_StartSimulation(t *testing.T) {
	onTheWay := order(entities.StatusOnTheWay, driver.UserID)
	onTheWay.Address = &entities.DeliveryAddress{Name: "Home", Location: &louvre}

	located := onTheWay
	located.DriverLocation = &paris

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m driverMocks)
		wantStatus   int
	}{
		{
			name: "follows route from last position",
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().GetOrderFor(mock.Anything, driver, "order-1").Return(located, nil).Once()
				path := []entities.Coordinate{paris, {Lat: 48.858, Lng: 2.345}, louvre}
				m.router.EXPECT().Route(mock.Anything, paris, louvre).Return(routing.Route{Points: path}, nil).Once()
				m.tracker.EXPECT().StartSimulation("order-1", driver.UserID, path, trackingCfg.SimulationInterval).Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "straight line when router fails",
			body: `{"from":{"lat":48.8566,"lng":2.3522}}`,
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().GetOrderFor(mock.Anything, driver, "order-1").Return(onTheWay, nil).Once()
				m.router.EXPECT().Route(mock.Anything, paris, louvre).Return(routing.Route{}, routing.ErrUpstream).Once()
				m.tracker.EXPECT().
					StartSimulation("order-1", driver.UserID, mock.MatchedBy(func(path []entities.Coordinate) bool {
						return len(path) == trackingCfg.SimulationSteps && path[len(path)-1] == louvre
					}), trackingCfg.SimulationInterval).
					Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name: "start unknown",
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().GetOrderFor(mock.Anything, driver, "order-1").Return(onTheWay, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not on the way",
			mockBehavior: func(m driverMocks) {
				m.orders.EXPECT().GetOrderFor(mock.Anything, driver, "order-1").Return(order(entities.StatusPreparing, driver.UserID), nil).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "bad start",
			body:         `{"from":{"lat":100,"lng":0}}`,
			mockBehavior: func(m driverMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			tc.mockBehavior(m)

			rr := serve(h, http.MethodPost, "/driver/orders/order-1/simulate", tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestDriverHandler_StopSimulation(t *testing.T) {
	testCases := []struct {
		name       string
		running    bool
		getErr     error
		wantStatus int
	}{
		{name: "running", running: true, wantStatus: http.StatusNoContent},
		{name: "not running", running: false, wantStatus: http.StatusNotFound},
		{name: "foreign order", getErr: entities.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "store down", getErr: entities.StoreFault(errors.New("timeout")), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newDriverHandler(t, driver)
			m.orders.EXPECT().GetOrderFor(mock.Anything, driver, "order-1").Return(order(entities.StatusOnTheWay, driver.UserID), tc.getErr).Once()
			if tc.getErr == nil {
				m.tracker.EXPECT().Stop("order-1").Return(tc.running).Once()
			}

			rr := serve(h, http.MethodDelete, "/driver/orders/order-1/simulate", "")
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
