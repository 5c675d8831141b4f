package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

func NewPostgresExperienceRepo(db *pgxpool.Pool, log logger.Logger) section.Repository[*experience.Experience] {
	schema := rowSchema[*experience.Experience]{
		table: "experiences",
		columns: []string{
			"id", "profile_id", "company", "role", "description",
			"start_date", "end_date", "is_current", "sort_order", "created_at",
		},
		scan: func(row pgx.Row) (*experience.Experience, error) {
			e := &experience.Experience{}
			err := row.Scan(
				&e.ID, &e.ProfileID, &e.Company, &e.Role, &e.Description,
				&e.StartDate, &e.EndDate, &e.IsCurrent, &e.SortOrder, &e.CreatedAt,
			)
			if err != nil {
				return nil, apperror.NewInternal("failed to scan experience row", err)
			}
			return e, nil
		},
		insertValues: func(e *experience.Experience) []any {
			return []any{
				e.ID, e.ProfileID, e.Company, e.Role, e.Description,
				e.StartDate, e.EndDate, e.IsCurrent, e.SortOrder, e.CreatedAt,
			}
		},
		updateMap: func(e *experience.Experience) map[string]any {
			return map[string]any{
				"company":     e.Company,
				"role":        e.Role,
				"description": e.Description,
				"start_date":  e.StartDate,
				"end_date":    e.EndDate,
				"is_current":  e.IsCurrent,
			}
		},
		identity: func(e *experience.Experience) (uuid.UUID, uuid.UUID) { return e.ID, e.ProfileID },
	}
	return newChildRepo(db, schema, log)
}
