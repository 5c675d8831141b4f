package dashboard

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/portfolio"
	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/logger"
)

type DashboardUseCase struct {
	profileRepo    profile.Repository
	skillRepo      section.Repository[*skill.Skill]
	projectRepo    section.Repository[*project.Project]
	experienceRepo section.Repository[*experience.Experience]
	educationRepo  section.Repository[*education.Education]
	logger         logger.Logger
}

func NewDashboardUseCase(
	profiles profile.Repository,
	skills section.Repository[*skill.Skill],
	projects section.Repository[*project.Project],
	experiences section.Repository[*experience.Experience],
	educations section.Repository[*education.Education],
	log logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		profileRepo:    profiles,
		skillRepo:      skills,
		projectRepo:    projects,
		experienceRepo: experiences,
		educationRepo:  educations,
		logger:         log,
	}
}

type Output struct {
	Profile         *profile.Profile          `json:"profile"`
	SkillCount      int                       `json:"skill_count"`
	ProjectCount    int                       `json:"project_count"`
	ExperienceCount int                       `json:"experience_count"`
	EducationCount  int                       `json:"education_count"`
	Checklist       []portfolio.ChecklistItem `json:"checklist"`
	CompletionPct   int                       `json:"completion_pct"`
}

func (uc *DashboardUseCase) Execute(ctx context.Context, ownerID uuid.UUID) (*Output, error) {
	out := &Output{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := uc.profileRepo.GetByOwnerID(gctx, ownerID)
		if err != nil {
			return err
		}
		out.Profile = p
		return nil
	})
	g.Go(func() error {
		n, err := uc.skillRepo.CountByProfile(gctx, ownerID)
		if err != nil {
			return err
		}
		out.SkillCount = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.projectRepo.CountByProfile(gctx, ownerID)
		if err != nil {
			return err
		}
		out.ProjectCount = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.experienceRepo.CountByProfile(gctx, ownerID)
		if err != nil {
			return err
		}
		out.ExperienceCount = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.educationRepo.CountByProfile(gctx, ownerID)
		if err != nil {
			return err
		}
		out.EducationCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Checklist, out.CompletionPct = portfolio.Checklist(
		out.Profile, out.SkillCount, out.ProjectCount, out.ExperienceCount,
	)
	return out, nil
}
