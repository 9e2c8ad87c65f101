package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/tracking"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Tracker interface {
	StartSimulation(orderID, driverID string, path []entities.Coordinate, interval time.Duration) error
	Stop(orderID string) bool
}

type DriverHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	orders       OrderService
	router       Router
	tracker      Tracker
	cfg          config.Tracking
	authenticate Middleware
}

func NewDriverHandler(
	logger *slog.Logger,
	orders OrderService,
	router Router,
	tracker Tracker,
	cfg config.Tracking,
	authenticate Middleware,
) *DriverHandler {
	return &DriverHandler{
		logger:       logger.With(slog.String("handler", "driver")),
		validate:     validator.New(),
		orders:       orders,
		router:       router,
		tracker:      tracker,
		cfg:          cfg,
		authenticate: authenticate,
	}
}

func (h *DriverHandler) Init(r chi.Router) {
	r.Route("/driver/orders", func(r chi.Router) {
		r.Use(h.authenticate, middleware.RequireRole(entities.RoleDriver))

		r.Get("/available", h.Available)
		r.Get("/active", h.Active)
		r.Get("/history", h.History)
		r.Post("/{id}/accept", h.Accept)
		r.Post("/{id}/status", h.AdvanceStatus)
		r.Post("/{id}/location", h.ReportLocation)
		r.Post("/{id}/simulate", h.StartSimulation)
		r.Delete("/{id}/simulate", h.StopSimulation)
	})
}

// Available возвращает заказы без водителя.
// @Summary      Доступные заказы
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Router       /driver/orders/available [get]
func (h *DriverHandler) Available(w http.ResponseWriter, r *http.Request) {
	listOrders(w, r, h.logger, h.orders, registry.Available())
}

// Active возвращает заказы, которые водитель сейчас везёт.
// @Summary      Активные заказы водителя
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Router       /driver/orders/active [get]
func (h *DriverHandler) Active(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	listOrders(w, r, h.logger, h.orders, registry.DriverActive(session.UserID))
}

// History возвращает все заказы водителя, новые первыми.
// @Summary      История водителя
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Router       /driver/orders/history [get]
func (h *DriverHandler) History(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	listOrders(w, r, h.logger, h.orders, registry.DriverHistory(session.UserID))
}

// Accept назначает водителя на заказ. Из нескольких одновременных
// принятий успешно только одно.
// @Summary      Принять заказ
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже принят"
// @Router       /driver/orders/{id}/accept [post]
func (h *DriverHandler) Accept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := entities.SessionFrom(ctx)

	order, err := h.orders.AcceptOrder(ctx, chi.URLParam(r, "id"), session.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "accept order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AdvanceStatus переводит заказ на следующий этап.
// @Summary      Сменить статус
// @Tags         driver
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "ID заказа"
// @Param        request  body      StatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /driver/orders/{id}/status [post]
func (h *DriverHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	next := entities.Status(req.Status)
	expected := entities.Status(req.Expected)
	if expected == "" {
		expected = previousStatus(next)
	}

	session, _ := entities.SessionFrom(ctx)
	id := chi.URLParam(r, "id")
	order, err := h.orders.AdvanceStatus(ctx, id, session.UserID, expected, next)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "advance status", err)
		return
	}
	if order.Status.IsTerminal() {
		h.tracker.Stop(id)
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ReportLocation записывает текущую позицию водителя.
// @Summary      Сообщить позицию
// @Tags         driver
// @Security     BearerAuth
// @Accept       json
// @Param        id       path      string      true  "ID заказа"
// @Param        request  body      Coordinate  true  "Позиция"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в пути"
// @Router       /driver/orders/{id}/location [post]
func (h *DriverHandler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Coordinate
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, _ := entities.SessionFrom(ctx)
	if err := h.orders.ReportDriverLocation(ctx, chi.URLParam(r, "id"), session.UserID, CoordinateToEntity(req)); err != nil {
		writeServiceError(ctx, h.logger, w, "report location", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartSimulation запускает демонстрационную поездку до адреса доставки.
// @Summary      Симуляция поездки
// @Description  Старт берётся из запроса или из последней позиции водителя. Путь строится по маршруту, а если маршрут недоступен, по прямой.
// @Tags         driver
// @Security     BearerAuth
// @Accept       json
// @Param        id       path      string           true   "ID заказа"
// @Param        request  body      SimulateRequest  false  "Точка старта"
// @Success      202
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в пути"
// @Router       /driver/orders/{id}/simulate [post]
func (h *DriverHandler) StartSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SimulateRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}
	if req.From != nil {
		if err := h.validate.Struct(req.From); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}

	session, _ := entities.SessionFrom(ctx)
	order, err := h.orders.GetOrderFor(ctx, session, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get order", err)
		return
	}
	if order.Status != entities.StatusOnTheWay || order.DriverID != session.UserID {
		utils.WriteError(w, "order is not on the way with this driver", http.StatusConflict)
		return
	}
	if order.Address == nil || order.Address.Location == nil {
		utils.WriteError(w, "delivery address has no location", http.StatusConflict)
		return
	}

	var from entities.Coordinate
	switch {
	case req.From != nil:
		from = CoordinateToEntity(*req.From)
	case order.DriverLocation != nil:
		from = *order.DriverLocation
	default:
		utils.WriteValidationError(w, entities.Invalid("start position is unknown"))
		return
	}

	path := h.drivePath(r, from, *order.Address.Location)
	if err := h.tracker.StartSimulation(order.ID, session.UserID, path, h.cfg.SimulationInterval); err != nil {
		writeServiceError(ctx, h.logger, w, "start simulation", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// StopSimulation останавливает поездку.
// @Summary      Остановить симуляцию
// @Tags         driver
// @Security     BearerAuth
// @Param        id   path      string  true  "ID заказа"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Симуляция не запущена"
// @Router       /driver/orders/{id}/simulate [delete]
func (h *DriverHandler) StopSimulation(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	// чужой заказ выглядит так же, как несуществующий
	if _, err := h.orders.GetOrderFor(r.Context(), session, id); err != nil {
		writeServiceError(r.Context(), h.logger, w, "get order", err)
		return
	}
	if !h.tracker.Stop(id) {
		utils.WriteError(w, "no simulation running", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// drivePath follows the road route when the router answers and falls back to
// a straight line otherwise.
func (h *DriverHandler) drivePath(r *http.Request, from, to entities.Coordinate) []entities.Coordinate {
	if h.router != nil {
		route, err := h.router.Route(r.Context(), from, to)
		if err == nil && len(route.Points) > 0 {
			return route.Points
		}
		h.logger.WarnContext(r.Context(), "route unavailable, driving straight", slog.Any("error", err))
	}
	return tracking.Interpolate(from, to, h.cfg.SimulationSteps)
}

func previousStatus(next entities.Status) entities.Status {
	switch next {
	case entities.StatusOnTheWay:
		return entities.StatusPreparing
	case entities.StatusDelivered:
		return entities.StatusOnTheWay
	}
	return ""
}
