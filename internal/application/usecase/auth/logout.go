package auth

import (
	"context"
	"time"

	"github.com/portify/portify-api/internal/application/service"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/auth"
	"github.com/portify/portify-api/pkg/logger"
)

type LogoutUseCase struct {
	sessions service.SessionRegistry
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLogoutUseCase(sessions service.SessionRegistry, jwtSvc *auth.JWTService, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, jwtSvc: jwtSvc, logger: log}
}

// Execute revokes the presented token for the remainder of its lifetime.
func (uc *LogoutUseCase) Execute(ctx context.Context, tokenString string) error {
	claims, err := uc.jwtSvc.ValidateToken(tokenString)
	if err != nil {
		return apperror.NewNotAuthenticated("invalid token on logout")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperror.NewInternal("failed to revoke session", err)
	}
	return nil
}
