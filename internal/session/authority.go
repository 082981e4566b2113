package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/domain"
)

// Authority is the single source of truth for who is logged in and with
// what privilege. Only Login, Logout and the authority-rejection reset path
// mutate session state.
type Authority struct {
	store Store
	ttl   time.Duration
}

func NewAuthority(store Store, ttl time.Duration) *Authority {
	return &Authority{store: store, ttl: ttl}
}

// Login stores the backend's authentication result as a new session. All
// four identity fields are written in one record, never partially. The only
// possible failure is the store itself; bad credentials never reach here.
func (a *Authority) Login(ctx context.Context, creds backend.Credentials) (domain.Session, error) {
	sess := domain.Session{
		ID:          uuid.NewString(),
		Token:       creds.AccessToken,
		Role:        creds.Role,
		UserID:      creds.UserID,
		DisplayName: creds.Username,
		ExpiresAt:   time.Now().Add(a.ttl),
	}
	if err := a.store.Create(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Logout clears the session unconditionally. Logging out an unknown or
// already-cleared session is a no-op, never an error.
func (a *Authority) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return a.store.Delete(ctx, sessionID)
}

// Current returns the live session for the id, or false for anonymous.
// Expired and missing sessions look the same to callers.
func (a *Authority) Current(ctx context.Context, sessionID string) (domain.Session, bool) {
	if sessionID == "" {
		return domain.Session{}, false
	}
	sess, err := a.store.Get(ctx, sessionID)
	if err != nil || sess == nil {
		return domain.Session{}, false
	}
	if !sess.ExpiresAt.IsZero() && time.Now().After(sess.ExpiresAt) {
		_ = a.store.Delete(ctx, sessionID)
		return domain.Session{}, false
	}
	return *sess, true
}

// CurrentRole returns the stored role, or RoleNone for anonymous.
func (a *Authority) CurrentRole(ctx context.Context, sessionID string) domain.Role {
	sess, ok := a.Current(ctx, sessionID)
	if !ok {
		return domain.RoleNone
	}
	return sess.Role
}

// Decision is the outcome of a role check. A denied check carries the login
// route to send the caller to; unauthorized access is a navigation outcome,
// not an error.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Authorize gates a view: customer views require the customer role, admin
// views accept admin and superadmin. Anything else redirects to the login
// view matching the gate.
func (a *Authority) Authorize(role, required domain.Role) Decision {
	switch required {
	case domain.RoleCustomer:
		if role == domain.RoleCustomer {
			return Decision{Allowed: true}
		}
		return Decision{RedirectTo: "/customer/login"}
	case domain.RoleAdmin, domain.RoleSuperAdmin:
		if role.Admin() {
			return Decision{Allowed: true}
		}
		return Decision{RedirectTo: "/login"}
	default:
		return Decision{Allowed: true}
	}
}
