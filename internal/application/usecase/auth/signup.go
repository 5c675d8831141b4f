package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/user"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/auth"
	"github.com/portify/portify-api/pkg/logger"
)

const minPasswordLength = 8

type SignUpUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewSignUpUseCase(users user.Repository, profiles profile.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{userRepo: users, profileRepo: profiles, jwtSvc: jwtSvc, logger: log}
}

type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Username string
}

type SignUpOutput struct {
	AccessToken string
	Username    string
}

func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	username := profile.NormalizeUsername(input.Username)
	if err := profile.ValidateUsername(username); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, apperror.NewValidation("email", "is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, apperror.NewValidation("password", "must be at least 8 characters")
	}

	// Username is checked before touching the identity layer so a taken
	// name never creates a dangling account.
	taken, err := uc.profileRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewAppError(apperror.ErrConflict, "Username is already taken", "username '"+username+"' exists", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	newProfile := &profile.Profile{
		OwnerID:   newUser.ID,
		Username:  username,
		FullName:  strings.TrimSpace(input.FullName),
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Create(ctx, newProfile); err != nil {
		uc.logger.Error("signup created user but profile creation failed", err,
			zap.String("user_id", newUser.ID.String()))
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &SignUpOutput{AccessToken: token, Username: username}, nil
}
