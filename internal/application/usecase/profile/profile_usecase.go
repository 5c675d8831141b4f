package profile

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portify/portify-api/internal/application/service"
	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	cache       service.PortfolioCache
	events      service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(
	repo profile.Repository,
	uploader service.Uploader,
	cache service.PortfolioCache,
	events service.EventPublisher,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo, uploader: uploader, cache: cache, events: events, logger: log}
}

func (uc *ProfileUseCase) ExecuteGet(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return uc.profileRepo.GetByOwnerID(ctx, ownerID)
}

type UpdateProfileInput struct {
	OwnerID   uuid.UUID
	FullName  string
	Headline  string
	Bio       string
	Location  string
	Website   string
	Github    string
	Linkedin  string
	Twitter   string
	Instagram string
	Youtube   string
	Dribbble  string
	IsPublic  bool
}

func (uc *ProfileUseCase) ExecuteUpdate(ctx context.Context, input UpdateProfileInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	p.FullName = input.FullName
	p.Headline = input.Headline
	p.Bio = input.Bio
	p.Location = input.Location
	p.Website = input.Website
	p.Github = input.Github
	p.Linkedin = input.Linkedin
	p.Twitter = input.Twitter
	p.Instagram = input.Instagram
	p.Youtube = input.Youtube
	p.Dribbble = input.Dribbble
	p.IsPublic = input.IsPublic
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, input.OwnerID)
	return p, nil
}

// MaxAvatarSize is the upload limit enforced at the edge.
const MaxAvatarSize = 5 << 20

type UpdateAvatarInput struct {
	OwnerID uuid.UUID
	File    io.Reader
	Size    int64
}

type UpdateAvatarOutput struct {
	AvatarURL string
}

func (uc *ProfileUseCase) ExecuteUpdateAvatar(ctx context.Context, input UpdateAvatarInput) (*UpdateAvatarOutput, error) {
	if input.Size > MaxAvatarSize {
		return nil, apperror.NewValidation("file", "must be at most 5MB")
	}

	folder := fmt.Sprintf("users/%s", input.OwnerID.String())
	url, err := uc.uploader.Upload(ctx, input.File, folder, "avatar")
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	if err := uc.profileRepo.UpdateAvatarURL(ctx, input.OwnerID, url); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, input.OwnerID)
	return &UpdateAvatarOutput{AvatarURL: url}, nil
}

func (uc *ProfileUseCase) afterMutation(ctx context.Context, ownerID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("portfolio cache invalidation failed",
			zap.String("owner_id", ownerID.String()), zap.Error(err))
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.events.PublishPortfolioUpdated(pubCtx, ownerID, "profile"); err != nil {
			uc.logger.Warn("portfolio event publish failed",
				zap.String("owner_id", ownerID.String()), zap.Error(err))
		}
	}()
}
