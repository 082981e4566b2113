package session

import (
	"context"

	"storefront-gateway/internal/domain"
)

// Store persists session records between requests. Implementations return
// (nil, nil) for a missing session rather than an error.
type Store interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
