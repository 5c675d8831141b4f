package persistence

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/section"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

func NewPostgresProjectRepo(db *pgxpool.Pool, log logger.Logger) section.Repository[*project.Project] {
	schema := rowSchema[*project.Project]{
		table: "projects",
		columns: []string{
			"id", "profile_id", "title", "description", "tech_stack",
			"github_url", "live_url", "featured", "sort_order", "created_at",
		},
		scan: func(row pgx.Row) (*project.Project, error) {
			p := &project.Project{}
			err := row.Scan(
				&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.TechStack,
				&p.GithubURL, &p.LiveURL, &p.Featured, &p.SortOrder, &p.CreatedAt,
			)
			if err != nil {
				return nil, apperror.NewInternal("failed to scan project row", err)
			}
			return p, nil
		},
		insertValues: func(p *project.Project) []any {
			return []any{
				p.ID, p.ProfileID, p.Title, p.Description, p.TechStack,
				p.GithubURL, p.LiveURL, p.Featured, p.SortOrder, p.CreatedAt,
			}
		},
		updateMap: func(p *project.Project) map[string]any {
			return map[string]any{
				"title":       p.Title,
				"description": p.Description,
				"tech_stack":  p.TechStack,
				"github_url":  p.GithubURL,
				"live_url":    p.LiveURL,
				"featured":    p.Featured,
			}
		},
		identity: func(p *project.Project) (uuid.UUID, uuid.UUID) { return p.ID, p.ProfileID },
	}
	return newChildRepo(db, schema, log)
}
