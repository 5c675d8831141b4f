package service

import (
	"context"

	"github.com/google/uuid"
)

type EventPublisher interface {
	PublishPortfolioUpdated(ctx context.Context, ownerID uuid.UUID, sectionKind string) error
}
