package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/portify/portify-api/internal/domain/user"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/auth"
	"github.com/portify/portify-api/pkg/logger"
)

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{userRepo: repo, jwtSvc: jwtSvc, logger: log}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same message whether the email is unknown or the password wrong.
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewAppError(apperror.ErrUnauthorized, "Invalid email or password", "unknown email", nil)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, apperror.NewAppError(apperror.ErrUnauthorized, "Invalid email or password", "incorrect password", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{AccessToken: token}, nil
}
