package education

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify-api/pkg/apperror"
)

type Education struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	StartYear   int       `json:"start_year"`
	// EndYear nil means the program is ongoing.
	EndYear   *int      `json:"end_year"`
	IsCurrent bool      `json:"is_current"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Education) Kind() string               { return "education" }
func (e *Education) SetID(id uuid.UUID)         { e.ID = id }
func (e *Education) SetProfileID(pid uuid.UUID) { e.ProfileID = pid }
func (e *Education) SetSortOrder(order int)     { e.SortOrder = order }
func (e *Education) SetCreatedAt(t time.Time)   { e.CreatedAt = t }

func (e *Education) Normalize() {
	e.Institution = strings.TrimSpace(e.Institution)
	if e.IsCurrent {
		e.EndYear = nil
	}
}

func (e *Education) Validate() error {
	if e.Institution == "" {
		return apperror.NewValidation("institution", "is required")
	}
	if e.StartYear < 1900 || e.StartYear > 2100 {
		return apperror.NewValidation("start_year", "is out of range")
	}
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		return apperror.NewValidation("end_year", "must not be before start_year")
	}
	return nil
}
