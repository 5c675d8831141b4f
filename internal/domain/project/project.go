package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify-api/pkg/apperror"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	GithubURL   *string   `json:"github_url"`
	LiveURL     *string   `json:"live_url"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Project) Kind() string               { return "project" }
func (p *Project) SetID(id uuid.UUID)         { p.ID = id }
func (p *Project) SetProfileID(pid uuid.UUID) { p.ProfileID = pid }
func (p *Project) SetSortOrder(order int)     { p.SortOrder = order }
func (p *Project) SetCreatedAt(t time.Time)   { p.CreatedAt = t }

// Normalize trims the title and de-duplicates the tech stack while
// preserving the order tags were entered in.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)

	seen := make(map[string]struct{}, len(p.TechStack))
	deduped := make([]string, 0, len(p.TechStack))
	for _, tag := range p.TechStack {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, tag)
	}
	p.TechStack = deduped
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return apperror.NewValidation("title", "is required")
	}
	return nil
}
