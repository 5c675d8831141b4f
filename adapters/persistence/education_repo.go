package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

func NewPostgresEducationRepo(db *pgxpool.Pool, log logger.Logger) section.Repository[*education.Education] {
	schema := rowSchema[*education.Education]{
		table: "education",
		columns: []string{
			"id", "profile_id", "institution", "degree", "field",
			"start_year", "end_year", "is_current", "sort_order", "created_at",
		},
		scan: func(row pgx.Row) (*education.Education, error) {
			e := &education.Education{}
			err := row.Scan(
				&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.Field,
				&e.StartYear, &e.EndYear, &e.IsCurrent, &e.SortOrder, &e.CreatedAt,
			)
			if err != nil {
				return nil, apperror.NewInternal("failed to scan education row", err)
			}
			return e, nil
		},
		insertValues: func(e *education.Education) []any {
			return []any{
				e.ID, e.ProfileID, e.Institution, e.Degree, e.Field,
				e.StartYear, e.EndYear, e.IsCurrent, e.SortOrder, e.CreatedAt,
			}
		},
		updateMap: func(e *education.Education) map[string]any {
			return map[string]any{
				"institution": e.Institution,
				"degree":      e.Degree,
				"field":       e.Field,
				"start_year":  e.StartYear,
				"end_year":    e.EndYear,
				"is_current":  e.IsCurrent,
			}
		},
		identity: func(e *education.Education) (uuid.UUID, uuid.UUID) { return e.ID, e.ProfileID },
	}
	return newChildRepo(db, schema, log)
}
