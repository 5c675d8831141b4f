package experience

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify-api/pkg/apperror"
)

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (e *Experience) Kind() string               { return "experience" }
func (e *Experience) SetID(id uuid.UUID)         { e.ID = id }
func (e *Experience) SetProfileID(pid uuid.UUID) { e.ProfileID = pid }
func (e *Experience) SetSortOrder(order int)     { e.SortOrder = order }
func (e *Experience) SetCreatedAt(t time.Time)   { e.CreatedAt = t }

// Normalize enforces the single source of truth for ongoing roles: when
// IsCurrent is set, the end date is nulled no matter what the client sent.
func (e *Experience) Normalize() {
	e.Company = strings.TrimSpace(e.Company)
	e.Role = strings.TrimSpace(e.Role)
	if e.IsCurrent {
		e.EndDate = nil
	}
}

func (e *Experience) Validate() error {
	if e.Company == "" {
		return apperror.NewValidation("company", "is required")
	}
	if e.Role == "" {
		return apperror.NewValidation("role", "is required")
	}
	return nil
}
