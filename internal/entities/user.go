package entities

import "context"

type Role string

const (
	RoleClient Role = "client"
	RoleDriver Role = "driver"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleDriver
}

type User struct {
	ID           string
	Email        string
	DisplayName  string
	Role         Role
	PasswordHash string
	TokenVersion int
}

type Session struct {
	UserID      string
	Email       string
	DisplayName string
	Role        Role
}

type AuthEventType string

const (
	SignedIn       AuthEventType = "signed_in"
	SignedOut      AuthEventType = "signed_out"
	ProfileUpdated AuthEventType = "profile_updated"
)

type AuthEvent struct {
	Type   AuthEventType
	UserID string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
