package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/service"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	SignUp(ctx context.Context, in service.SignUpInput) (string, entities.User, error)
	SignIn(ctx context.Context, email, password string) (string, entities.User, error)
	SignOut(ctx context.Context, userID string) error
	UpdateDisplayName(ctx context.Context, userID, name string) (entities.User, error)
}

// Middleware wraps a handler, like the session middleware.
type Middleware = func(next http.Handler) http.Handler

type AuthHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          AuthService
	authenticate Middleware
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, authenticate Middleware) *AuthHandler {
	return &AuthHandler{
		logger:       logger.With(slog.String("handler", "auth")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/signin", h.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/signout", h.SignOut)
			r.Get("/session", h.Session)
			r.Patch("/profile", h.UpdateProfile)
		})
	})
}

// SignUp регистрирует пользователя.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignUpRequest  true  "Данные пользователя"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email уже занят"
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, user, err := h.svc.SignUp(r.Context(), service.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        entities.Role(req.Role),
	})
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "sign up", err)
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: token, User: UserEntityToJSON(user)}, http.StatusCreated)
}

// SignIn выдаёт токен сессии.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignInRequest  true  "Email и пароль"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, user, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "sign in", err)
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: token, User: UserEntityToJSON(user)}, http.StatusOK)
}

// SignOut отзывает все токены пользователя.
// @Summary      Выход
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	if err := h.svc.SignOut(r.Context(), session.UserID); err != nil {
		writeServiceError(r.Context(), h.logger, w, "sign out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session возвращает текущего пользователя.
// @Summary      Текущая сессия
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, _ := entities.SessionFrom(r.Context())
	utils.WriteJSON(w, SessionToJSON(session), http.StatusOK)
}

// UpdateProfile меняет отображаемое имя.
// @Summary      Изменить профиль
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ProfileRequest  true  "Новое имя"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, _ := entities.SessionFrom(r.Context())
	user, err := h.svc.UpdateDisplayName(r.Context(), session.UserID, req.DisplayName)
	if err != nil {
		writeServiceError(r.Context(), h.logger, w, "update profile", err)
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}
