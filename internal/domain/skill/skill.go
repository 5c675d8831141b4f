package skill

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify-api/pkg/apperror"
)

// SuggestedCategories is the fixed suggestion set shown by clients.
// Category itself is free-form.
var SuggestedCategories = []string{
	"Frontend", "Backend", "Mobile", "Database", "DevOps", "Design", "AI/ML", "Other",
}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Skill) Kind() string                 { return "skill" }
func (s *Skill) SetID(id uuid.UUID)           { s.ID = id }
func (s *Skill) SetProfileID(pid uuid.UUID)   { s.ProfileID = pid }
func (s *Skill) SetSortOrder(order int)       { s.SortOrder = order }
func (s *Skill) SetCreatedAt(t time.Time)     { s.CreatedAt = t }

func (s *Skill) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return apperror.NewValidation("name", "is required")
	}
	if s.Level < 1 || s.Level > 5 {
		return apperror.NewValidation("level", "must be between 1 and 5")
	}
	return nil
}
