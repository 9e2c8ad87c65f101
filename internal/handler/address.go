package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type AddressService interface {
	List(ctx context.Context, userID string) ([]entities.Address, error)
	Get(ctx context.Context, userID, id string) (entities.Address, error)
	Create(ctx context.Context, userID string, in service.AddressInput) (entities.Address, error)
	Replace(ctx context.Context, userID, id string, in service.AddressInput) (entities.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

type AddressHandler struct {
	logger       *slog.Logger
	svc          AddressService
	authenticate Middleware
}

func NewAddressHandler(logger *slog.Logger, svc AddressService, authenticate Middleware) *AddressHandler {
	return &AddressHandler{
		logger:       logger.With(slog.String("handler", "address")),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Route("/addresses", func(r chi.Router) {
		r.Use(h.authenticate, middleware.RequireRole(entities.RoleClient))
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Replace)
		r.Delete("/{id}", h.Delete)
	})
}

// List возвращает адресную книгу пользователя.
// @Summary      Адреса
// @Tags         addresses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Address
// @Router       /addresses [get]
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	addresses, err := h.svc.List(r.Context(), session.UserID)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "list addresses", err)
		return
	}

	out := make([]Address, len(addresses))
	for i, a := range addresses {
		out[i] = AddressEntityToJSON(a)
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// Create сохраняет новый адрес и определяет его координаты.
// @Summary      Добавить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AddressRequest  true  "Адрес"
// @Success      201  {object}  Address
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Адрес не найден геокодером"
// @Router       /addresses [post]
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, _ := entities.SessionFrom(r.Context())
	address, err := h.svc.Create(r.Context(), session.UserID, addressInput(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "create address", err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusCreated)
}

// Replace заменяет адрес целиком.
// @Summary      Изменить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "ID адреса"
// @Param        request  body      AddressRequest  true  "Адрес"
// @Success      200  {object}  Address
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{id} [put]
func (h *AddressHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, _ := entities.SessionFrom(r.Context())
	address, err := h.svc.Replace(r.Context(), session.UserID, chi.URLParam(r, "id"), addressInput(req))
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "replace address", err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

// Delete удаляет адрес.
// @Summary      Удалить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Param        id   path      string  true  "ID адреса"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	if err := h.svc.Delete(r.Context(), session.UserID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(r.Context(), h.logger, w, "delete address", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func addressInput(req AddressRequest) service.AddressInput {
	return service.AddressInput{
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	}
}
