package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

var profileColumns = []string{
	"owner_id", "username", "full_name", "headline", "bio", "location",
	"avatar_url", "website", "github", "linkedin", "twitter", "instagram",
	"youtube", "dribbble", "is_public", "created_at", "updated_at",
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.OwnerID, &p.Username, &p.FullName, &p.Headline, &p.Bio, &p.Location,
		&p.AvatarURL, &p.Website, &p.Github, &p.Linkedin, &p.Twitter, &p.Instagram,
		&p.Youtube, &p.Dribbble, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	query, args, err := psql.Insert("profiles").
		Columns(profileColumns...).
		Values(
			p.OwnerID, p.Username, p.FullName, p.Headline, p.Bio, p.Location,
			p.AvatarURL, p.Website, p.Github, p.Linkedin, p.Twitter, p.Instagram,
			p.Youtube, p.Dribbble, p.IsPublic, p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile insert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("profile", "username", p.Username)
		}
		return apperror.NewInternal("failed to create profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query, args, err := psql.Update("profiles").
		SetMap(map[string]any{
			"full_name": p.FullName,
			"headline":  p.Headline,
			"bio":       p.Bio,
			"location":  p.Location,
			"website":   p.Website,
			"github":    p.Github,
			"linkedin":  p.Linkedin,
			"twitter":   p.Twitter,
			"instagram": p.Instagram,
			"youtube":   p.Youtube,
			"dribbble":  p.Dribbble,
			"is_public": p.IsPublic,
			"updated_at": p.UpdatedAt,
		}).
		Where(sq.Eq{"owner_id": p.OwnerID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build profile update", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotAuthenticated("profile update matched no row")
	}
	return nil
}

func (r *postgresProfileRepo) UpdateAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) error {
	query := `UPDATE profiles SET avatar_url = $2, updated_at = NOW() WHERE owner_id = $1`
	cmdTag, err := r.db.Exec(ctx, query, ownerID, url)
	if err != nil {
		return apperror.NewInternal("failed to update avatar url", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotAuthenticated("avatar update matched no row")
	}
	return nil
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}
	return scanProfile(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresProfileRepo) GetByUsername(ctx context.Context, username string) (*profile.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}
	return scanProfile(r.db.QueryRow(ctx, query, args...))
}

func (r *postgresProfileRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE username = $1)`
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, apperror.NewInternal("failed to check username", err)
	}
	return exists, nil
}
