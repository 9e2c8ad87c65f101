package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	BumpTokenVersion(ctx context.Context, id string) (int, error)
	UpdateDisplayName(ctx context.Context, id, name string) (entities.User, error)
}

type SignUpInput struct {
	Email       string        `validate:"required,email"`
	Password    string        `validate:"required,min=6"`
	DisplayName string        `validate:"max=64"`
	Role        entities.Role `validate:"omitempty,oneof=client driver"`
}

type claims struct {
	Role    string `json:"role"`
	Version int    `json:"tv"`
	jwt.RegisteredClaims
}

// AuthService is a minimal local identity provider issuing HS256 session tokens.
type AuthService struct {
	logger   *slog.Logger
	repo     UserRepo
	validate *validator.Validate
	secret   []byte
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	nextID int
	subs   map[int]*authSubscriber
}

type authSubscriber struct {
	ctx context.Context
	ch  chan entities.AuthEvent
}

func NewAuthService(logger *slog.Logger, repo UserRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		logger:   logger.With(slog.String("service", "auth")),
		repo:     repo,
		validate: validator.New(),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		subs:     make(map[int]*authSubscriber),
	}
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (string, entities.User, error) {
	in.Email = normalizeEmail(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if in.Role == "" {
		in.Role = entities.RoleClient
	}
	if err := s.validate.Struct(in); err != nil {
		return "", entities.User{}, fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, entities.User{
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		Role:         in.Role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return s.signIn(ctx, user)
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, entities.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, entities.ErrInvalidCredentials
	}

	return s.signIn(ctx, user)
}

func (s *AuthService) signIn(ctx context.Context, user entities.User) (string, entities.User, error) {
	token, err := s.issue(user)
	if err != nil {
		return "", entities.User{}, err
	}
	s.broadcast(entities.AuthEvent{Type: entities.SignedIn, UserID: user.ID})
	return token, user, nil
}

// SignOut invalidates every token issued to the user so far.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	if _, err := s.repo.BumpTokenVersion(ctx, userID); err != nil {
		return fmt.Errorf("failed to bump token version: %w", err)
	}
	s.broadcast(entities.AuthEvent{Type: entities.SignedOut, UserID: userID})
	return nil
}

// Session validates the token and returns the session it carries.
func (s *AuthService) Session(ctx context.Context, token string) (entities.Session, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || c.Subject == "" {
		return entities.Session{}, entities.ErrUnauthorized
	}

	user, err := s.repo.GetUserByID(ctx, c.Subject)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Session{}, entities.ErrUnauthorized
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get user: %w", err)
	}
	// после выхода все выданные токены недействительны
	if user.TokenVersion != c.Version {
		return entities.Session{}, entities.ErrUnauthorized
	}

	return sessionOf(user), nil
}

func (s *AuthService) UpdateDisplayName(ctx context.Context, userID, name string) (entities.User, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required,max=64"); err != nil {
		return entities.User{}, fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}

	user, err := s.repo.UpdateDisplayName(ctx, userID, name)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update display name: %w", err)
	}
	s.broadcast(entities.AuthEvent{Type: entities.ProfileUpdated, UserID: userID})
	return user, nil
}

// Changes streams auth state events until ctx is done.
func (s *AuthService) Changes(ctx context.Context) <-chan entities.AuthEvent {
	sub := &authSubscriber{ctx: ctx, ch: make(chan entities.AuthEvent, 16)}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}()

	return sub.ch
}

func (s *AuthService) broadcast(ev entities.AuthEvent) {
	s.mu.Lock()
	subs := make([]*authSubscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- ev:
		case <-sub.ctx.Done():
		}
	}
}

func (s *AuthService) issue(user entities.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:    string(user.Role),
		Version: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func sessionOf(u entities.User) entities.Session {
	return entities.Session{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
