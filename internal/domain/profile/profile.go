package profile

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portify/portify-api/pkg/apperror"
)

// Profile is the aggregation root. Every skill, project, experience and
// education row belongs to exactly one profile. OwnerID doubles as the
// user id of the account that owns it.
type Profile struct {
	OwnerID   uuid.UUID `json:"id"`
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

var usernameRegex = regexp.MustCompile(`^[a-z0-9_-]{3,30}$`)

// NormalizeUsername lowercases and trims a raw username. Usernames are
// stored lowercase and are immutable after signup.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return apperror.NewValidation("username", "must be 3-30 characters of letters, digits, '_' or '-'")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	// Update writes the mutable display fields. Username is never updated.
	Update(ctx context.Context, p *Profile) error
	UpdateAvatarURL(ctx context.Context, ownerID uuid.UUID, url string) error
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	GetByUsername(ctx context.Context, username string) (*Profile, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
