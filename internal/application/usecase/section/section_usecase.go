package section

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portify/portify-api/internal/application/service"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/pkg/logger"
)

// UseCase is the one generic mutation path shared by skills, projects,
// experiences and education. The owner id always comes from the resolved
// session, never from the client payload.
type UseCase[T section.Entity] struct {
	kind   string
	repo   section.Repository[T]
	cache  service.PortfolioCache
	events service.EventPublisher
	logger logger.Logger
}

func NewUseCase[T section.Entity](
	repo section.Repository[T],
	cache service.PortfolioCache,
	events service.EventPublisher,
	log logger.Logger,
) *UseCase[T] {
	var probe T // typed nil; Kind does not touch the receiver
	return &UseCase[T]{kind: probe.Kind(), repo: repo, cache: cache, events: events, logger: log}
}

// Add validates, appends at the next sort position and returns the stored
// entity so the caller can reflect the new row without a refetch.
func (uc *UseCase[T]) Add(ctx context.Context, ownerID uuid.UUID, e T) (T, error) {
	var zero T

	e.SetProfileID(ownerID)
	e.Normalize()
	if err := e.Validate(); err != nil {
		return zero, err
	}

	next, err := uc.repo.NextSortOrder(ctx, ownerID)
	if err != nil {
		return zero, err
	}

	e.SetID(uuid.New())
	e.SetSortOrder(next)
	e.SetCreatedAt(time.Now().UTC())

	if err := uc.repo.Insert(ctx, e); err != nil {
		return zero, err
	}

	uc.afterMutation(ctx, ownerID)
	return e, nil
}

func (uc *UseCase[T]) Update(ctx context.Context, ownerID, id uuid.UUID, e T) error {
	e.SetID(id)
	e.SetProfileID(ownerID)
	e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, e); err != nil {
		return err
	}

	uc.afterMutation(ctx, ownerID)
	return nil
}

func (uc *UseCase[T]) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	uc.afterMutation(ctx, ownerID)
	return nil
}

func (uc *UseCase[T]) List(ctx context.Context, ownerID uuid.UUID) ([]T, error) {
	return uc.repo.ListByProfile(ctx, ownerID)
}

// afterMutation drops the cached read-model and announces the change. Both
// are best effort: the row is already committed, a stale cache only lasts
// until its TTL.
func (uc *UseCase[T]) afterMutation(ctx context.Context, ownerID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, ownerID); err != nil {
		uc.logger.Warn("portfolio cache invalidation failed",
			zap.String("owner_id", ownerID.String()), zap.Error(err))
	}

	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.events.PublishPortfolioUpdated(pubCtx, ownerID, uc.kind); err != nil {
			uc.logger.Warn("portfolio event publish failed",
				zap.String("owner_id", ownerID.String()), zap.Error(err))
		}
	}()
}
