package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/registry"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/routing"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/idempotency"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.NewOrder) (entities.Order, error)
	GetOrderFor(ctx context.Context, session entities.Session, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	CancelOrder(ctx context.Context, orderID, userID string) (entities.Order, error)
	AcceptOrder(ctx context.Context, orderID, driverID string) (entities.Order, error)
	AdvanceStatus(ctx context.Context, orderID, driverID string, expected, next entities.Status) (entities.Order, error)
	ReportDriverLocation(ctx context.Context, orderID, driverID string, c entities.Coordinate) error
}

type Router interface {
	Route(ctx context.Context, from, to entities.Coordinate) (routing.Route, error)
}

type OrderHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	orders       OrderService
	catalog      Catalog
	addresses    AddressService
	router       Router
	tracker      Tracker
	authenticate Middleware
}

func NewOrderHandler(
	logger *slog.Logger,
	orders OrderService,
	catalog Catalog,
	addresses AddressService,
	router Router,
	tracker Tracker,
	authenticate Middleware,
) *OrderHandler {
	return &OrderHandler{
		logger:       logger.With(slog.String("handler", "orders")),
		validate:     validator.New(),
		orders:       orders,
		catalog:      catalog,
		addresses:    addresses,
		router:       router,
		tracker:      tracker,
		authenticate: authenticate,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/{id}", h.GetOrder)
		r.Get("/{id}/route", h.GetRoute)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleClient))
			r.Post("/", h.CreateOrder)
			r.Get("/current", h.CurrentOrder)
			r.Get("/history", h.History)
			r.Post("/{id}/cancel", h.CancelOrder)
		})
	})
}

// CreateOrder оформляет заказ из позиций меню.
// @Summary      Создать заказ
// @Description  Повтор запроса с тем же Idempotency-Key возвращает первый созданный заказ
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Ключ идемпотентности"
// @Param        request          body      CreateOrderRequest  true   "Состав заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Failure      409  {object}  utils.ErrorResponse "Запрос с этим ключом ещё выполняется"
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items, err := h.catalog.LineItems(req.ProductIDs)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, _ := entities.SessionFrom(ctx)
	in := service.NewOrder{
		UserID:         session.UserID,
		Items:          items,
		Total:          entities.ItemsTotal(items),
		IdempotencyKey: idempotency.FromRequest(r),
	}

	if req.AddressID != "" {
		address, err := h.addresses.Get(ctx, session.UserID, req.AddressID)
		if err != nil {
			writeServiceError(ctx, h.logger, w, "get address", err)
			return
		}
		in.Address = address.ForDelivery()
	}

	order, err := h.orders.CreateOrder(ctx, in)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "create order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// CurrentOrder возвращает активный заказ клиента.
// @Summary      Текущий заказ
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Нет активного заказа"
// @Router       /orders/current [get]
func (h *OrderHandler) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	orders, err := h.orders.ListOrders(r.Context(), registry.ClientCurrent(session.UserID).Filter())
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "get current order", err)
		return
	}
	if len(orders) == 0 {
		utils.WriteError(w, "no active order", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(orders[0]), http.StatusOK)
}

// History возвращает все заказы клиента, новые первыми.
// @Summary      История заказов
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Router       /orders/history [get]
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	listOrders(w, r, h.logger, h.orders, registry.ClientHistory(session.UserID))
}

// GetOrder возвращает заказ, если он виден пользователю.
// @Summary      Заказ по ID
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := entities.SessionFrom(ctx)

	order, err := h.orders.GetOrderFor(ctx, session, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет незавершённый заказ.
// @Summary      Отменить заказ
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже завершён"
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := entities.SessionFrom(ctx)
	id := chi.URLParam(r, "id")

	order, err := h.orders.CancelOrder(ctx, id, session.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "cancel order", err)
		return
	}
	h.tracker.Stop(id)
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetRoute строит маршрут водителя до адреса доставки.
// @Summary      Маршрут доставки
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "ID заказа"
// @Success      200  {object}  Route
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Позиция водителя или адреса неизвестна"
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /orders/{id}/route [get]
func (h *OrderHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := entities.SessionFrom(ctx)

	order, err := h.orders.GetOrderFor(ctx, session, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, "get order", err)
		return
	}
	if order.DriverLocation == nil || order.Address == nil || order.Address.Location == nil {
		utils.WriteError(w, "route is not available yet", http.StatusConflict)
		return
	}

	route, err := h.router.Route(ctx, *order.DriverLocation, *order.Address.Location)
	if err != nil {
		writeServiceError(ctx, h.logger, w, "build route", err)
		return
	}
	utils.WriteJSON(w, RouteToJSON(route), http.StatusOK)
}

func listOrders(w http.ResponseWriter, r *http.Request, logger *slog.Logger, svc OrderService, q registry.Query) {
	orders, err := svc.ListOrders(r.Context(), q.Filter())
	if err != nil {
		writeServiceError(r.Context(), logger, w, "list orders", err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}
