package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/portify/portify-api/internal/application/service"
	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/portfolio"
	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

// GetPortfolioUseCase assembles the full read-model: profile plus the four
// child collections, fetched concurrently.
type GetPortfolioUseCase struct {
	profileRepo    profile.Repository
	skillRepo      section.Repository[*skill.Skill]
	projectRepo    section.Repository[*project.Project]
	experienceRepo section.Repository[*experience.Experience]
	educationRepo  section.Repository[*education.Education]
	cache          service.PortfolioCache
	logger         logger.Logger
}

func NewGetPortfolioUseCase(
	profiles profile.Repository,
	skills section.Repository[*skill.Skill],
	projects section.Repository[*project.Project],
	experiences section.Repository[*experience.Experience],
	educations section.Repository[*education.Education],
	cache service.PortfolioCache,
	log logger.Logger,
) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		profileRepo:    profiles,
		skillRepo:      skills,
		projectRepo:    projects,
		experienceRepo: experiences,
		educationRepo:  educations,
		cache:          cache,
		logger:         log,
	}
}

// ExecutePublic serves GET /u/{username}. A profile that does not exist and
// a profile that exists but is private are the same NotFound to the caller.
func (uc *GetPortfolioUseCase) ExecutePublic(ctx context.Context, username string) (*portfolio.FullPortfolio, error) {
	p, err := uc.profileRepo.GetByUsername(ctx, profile.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("portfolio", username)
		}
		return nil, err
	}
	if !p.IsPublic {
		return nil, apperror.NewNotFound("portfolio", username)
	}

	return uc.assemble(ctx, p), nil
}

// ExecuteOwner serves the owner's editor. Visibility is irrelevant here.
func (uc *GetPortfolioUseCase) ExecuteOwner(ctx context.Context, ownerID uuid.UUID) (*portfolio.FullPortfolio, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.assemble(ctx, p), nil
}

// WarmCache rebuilds and stores the section bundle. Used by the worker
// after a portfolio.updated event. A partial rebuild is an error so the
// event is retried instead of caching an incomplete bundle.
func (uc *GetPortfolioUseCase) WarmCache(ctx context.Context, ownerID uuid.UUID) error {
	sections, degraded := uc.loadSections(ctx, ownerID)
	if degraded {
		return apperror.NewInternal("section fetch failed, cache not warmed", nil)
	}
	return uc.cache.Set(ctx, ownerID, sections)
}

func (uc *GetPortfolioUseCase) assemble(ctx context.Context, p *profile.Profile) *portfolio.FullPortfolio {
	if cached, err := uc.cache.Get(ctx, p.OwnerID); err == nil && cached != nil {
		return &portfolio.FullPortfolio{Profile: p, Sections: *cached}
	} else if err != nil {
		uc.logger.Warn("portfolio cache read failed",
			zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
	}

	sections, degraded := uc.loadSections(ctx, p.OwnerID)

	// A degraded bundle is served for this request only, never cached.
	if !degraded {
		if err := uc.cache.Set(ctx, p.OwnerID, sections); err != nil {
			uc.logger.Warn("portfolio cache write failed",
				zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		}
	}

	return &portfolio.FullPortfolio{Profile: p, Sections: *sections}
}

// loadSections fans out the four independent child fetches. Each fetch is
// fail-soft: a failed collection renders as empty rather than taking the
// whole portfolio down. The degraded flag tells callers the bundle is
// incomplete and must not be cached.
func (uc *GetPortfolioUseCase) loadSections(ctx context.Context, ownerID uuid.UUID) (*portfolio.Sections, bool) {
	sections := &portfolio.Sections{
		Skills:      []*skill.Skill{},
		Projects:    []*project.Project{},
		Experiences: []*experience.Experience{},
		Education:   []*education.Education{},
	}

	var skillsErr, projectsErr, experiencesErr, educationErr error

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := uc.skillRepo.ListByProfile(gctx, ownerID)
		if err != nil {
			uc.logger.Warn("skills fetch failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
			skillsErr = err
			return nil
		}
		sections.Skills = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.projectRepo.ListByProfile(gctx, ownerID)
		if err != nil {
			uc.logger.Warn("projects fetch failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
			projectsErr = err
			return nil
		}
		sections.Projects = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.experienceRepo.ListByProfile(gctx, ownerID)
		if err != nil {
			uc.logger.Warn("experiences fetch failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
			experiencesErr = err
			return nil
		}
		sections.Experiences = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.educationRepo.ListByProfile(gctx, ownerID)
		if err != nil {
			uc.logger.Warn("education fetch failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
			educationErr = err
			return nil
		}
		sections.Education = items
		return nil
	})

	g.Wait()
	degraded := skillsErr != nil || projectsErr != nil || experiencesErr != nil || educationErr != nil
	return sections, degraded
}
