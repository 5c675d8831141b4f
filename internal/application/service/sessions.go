package service

import (
	"context"
	"time"
)

// SessionRegistry invalidates issued sessions. Tokens stay valid until their
// expiry unless their JTI has been revoked here.
type SessionRegistry interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
