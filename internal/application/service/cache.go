package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/portify/portify-api/internal/domain/portfolio"
)

// PortfolioCache is the read-model cache boundary. A miss is (nil, nil).
type PortfolioCache interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*portfolio.Sections, error)
	Set(ctx context.Context, ownerID uuid.UUID, sections *portfolio.Sections) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
