package http

import (
	"time"

	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/apperror"
)

// Auth

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Username string `json:"username" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile

type UpdateProfileRequest struct {
	FullName  string `json:"full_name"`
	Headline  string `json:"headline"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Website   string `json:"website" binding:"omitempty,url"`
	Github    string `json:"github" binding:"omitempty,url"`
	Linkedin  string `json:"linkedin" binding:"omitempty,url"`
	Twitter   string `json:"twitter" binding:"omitempty,url"`
	Instagram string `json:"instagram" binding:"omitempty,url"`
	Youtube   string `json:"youtube" binding:"omitempty,url"`
	Dribbble  string `json:"dribbble" binding:"omitempty,url"`
	IsPublic  bool   `json:"is_public"`
}

// Sections. Owner ids are never part of a request body; they come from the
// session. Each request type converts into a fresh domain entity and the
// use case stamps identity and ordering.

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Level    int    `json:"level" binding:"required,min=1,max=5"`
}

func (r *SkillRequest) ToDomain() *skill.Skill {
	return &skill.Skill{
		Name:     r.Name,
		Category: r.Category,
		Level:    r.Level,
	}
}

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	GithubURL   *string  `json:"github_url" binding:"omitempty,url"`
	LiveURL     *string  `json:"live_url" binding:"omitempty,url"`
	Featured    bool     `json:"featured"`
}

func (r *ProjectRequest) ToDomain() *project.Project {
	return &project.Project{
		Title:       r.Title,
		Description: r.Description,
		TechStack:   r.TechStack,
		GithubURL:   r.GithubURL,
		LiveURL:     r.LiveURL,
		Featured:    r.Featured,
	}
}

type ExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
}

// parseFlexibleDate accepts full dates and the "YYYY-MM" values produced by
// month inputs.
func parseFlexibleDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.NewValidation("date", "must be YYYY-MM-DD or YYYY-MM")
}

func (r *ExperienceRequest) ToDomain() (*experience.Experience, error) {
	start, err := parseFlexibleDate(r.StartDate)
	if err != nil {
		return nil, apperror.NewValidation("start_date", "must be YYYY-MM-DD or YYYY-MM")
	}
	end, err := parseFlexibleDate(r.EndDate)
	if err != nil {
		return nil, apperror.NewValidation("end_date", "must be YYYY-MM-DD or YYYY-MM")
	}
	return &experience.Experience{
		Company:     r.Company,
		Role:        r.Role,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   r.IsCurrent,
	}, nil
}

type EducationRequest struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year" binding:"required"`
	EndYear     *int   `json:"end_year"`
	IsCurrent   bool   `json:"is_current"`
}

func (r *EducationRequest) ToDomain() *education.Education {
	return &education.Education{
		Institution: r.Institution,
		Degree:      r.Degree,
		Field:       r.Field,
		StartYear:   r.StartYear,
		EndYear:     r.EndYear,
		IsCurrent:   r.IsCurrent,
	}
}

// ProfileDTO hides nothing today but keeps the wire shape decoupled from
// the domain struct.
type ProfileDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Headline  string    `json:"headline"`
	Bio       string    `json:"bio"`
	Location  string    `json:"location"`
	AvatarURL *string   `json:"avatar_url"`
	Website   string    `json:"website"`
	Github    string    `json:"github"`
	Linkedin  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	Instagram string    `json:"instagram"`
	Youtube   string    `json:"youtube"`
	Dribbble  string    `json:"dribbble"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        p.OwnerID.String(),
		Username:  p.Username,
		FullName:  p.FullName,
		Headline:  p.Headline,
		Bio:       p.Bio,
		Location:  p.Location,
		AvatarURL: p.AvatarURL,
		Website:   p.Website,
		Github:    p.Github,
		Linkedin:  p.Linkedin,
		Twitter:   p.Twitter,
		Instagram: p.Instagram,
		Youtube:   p.Youtube,
		Dribbble:  p.Dribbble,
		IsPublic:  p.IsPublic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
