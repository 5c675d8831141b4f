package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

func NewPostgresSkillRepo(db *pgxpool.Pool, log logger.Logger) section.Repository[*skill.Skill] {
	schema := rowSchema[*skill.Skill]{
		table:   "skills",
		columns: []string{"id", "profile_id", "name", "category", "level", "sort_order", "created_at"},
		scan: func(row pgx.Row) (*skill.Skill, error) {
			s := &skill.Skill{}
			err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level, &s.SortOrder, &s.CreatedAt)
			if err != nil {
				return nil, apperror.NewInternal("failed to scan skill row", err)
			}
			return s, nil
		},
		insertValues: func(s *skill.Skill) []any {
			return []any{s.ID, s.ProfileID, s.Name, s.Category, s.Level, s.SortOrder, s.CreatedAt}
		},
		updateMap: func(s *skill.Skill) map[string]any {
			return map[string]any{
				"name":     s.Name,
				"category": s.Category,
				"level":    s.Level,
			}
		},
		identity: func(s *skill.Skill) (uuid.UUID, uuid.UUID) { return s.ID, s.ProfileID },
	}
	return newChildRepo(db, schema, log)
}
