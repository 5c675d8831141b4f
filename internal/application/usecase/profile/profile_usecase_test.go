package profile

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/portify/portify-api/internal/domain/profile"

	"github.com/portify/portify-api/internal/domain/portfolio"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

type fakeProfileRepo struct {
	profile   *domain.Profile
	avatarURL string
}

func (r *fakeProfileRepo) Create(context.Context, *domain.Profile) error       { return nil }
func (r *fakeProfileRepo) UsernameExists(context.Context, string) (bool, error) { return false, nil }

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	r.profile = p
	return nil
}

func (r *fakeProfileRepo) UpdateAvatarURL(_ context.Context, _ uuid.UUID, url string) error {
	r.avatarURL = url
	return nil
}

func (r *fakeProfileRepo) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	if r.profile == nil || r.profile.OwnerID != ownerID {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return r.profile, nil
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	if r.profile == nil || r.profile.Username != username {
		return nil, apperror.NewNotFound("profile", username)
	}
	return r.profile, nil
}

type countingCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *countingCache) Get(context.Context, uuid.UUID) (*portfolio.Sections, error) { return nil, nil }
func (c *countingCache) Set(context.Context, uuid.UUID, *portfolio.Sections) error   { return nil }
func (c *countingCache) Invalidate(context.Context, uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

type noopEvents struct{}

func (noopEvents) PublishPortfolioUpdated(context.Context, uuid.UUID, string) error { return nil }

type fakeUploader struct {
	url string
	err error
}

func (u *fakeUploader) Upload(context.Context, io.Reader, string, string) (string, error) {
	return u.url, u.err
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

func TestExecuteUpdate_WritesFieldsAndInvalidatesCache(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{profile: &domain.Profile{OwnerID: ownerID, Username: "ada"}}
	cache := &countingCache{}
	uc := NewProfileUseCase(repo, &fakeUploader{}, cache, noopEvents{}, logger.NewNop())

	updated, err := uc.ExecuteUpdate(context.Background(), UpdateProfileInput{
		OwnerID:  ownerID,
		FullName: "Ada Lovelace",
		Headline: "Engineer",
		IsPublic: false,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.FullName)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "ada", updated.Username)
	assert.False(t, updated.UpdatedAt.IsZero())
	assert.Equal(t, 1, cache.invalidated)
}

func TestExecuteUpdate_UnknownOwner(t *testing.T) {
	repo := &fakeProfileRepo{}
	uc := NewProfileUseCase(repo, &fakeUploader{}, &countingCache{}, noopEvents{}, logger.NewNop())

	_, err := uc.ExecuteUpdate(context.Background(), UpdateProfileInput{OwnerID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestExecuteUpdateAvatar(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{profile: &domain.Profile{OwnerID: ownerID, Username: "ada"}}
	uploader := &fakeUploader{url: "https://cdn.example.com/users/x/avatar.png"}
	uc := NewProfileUseCase(repo, uploader, &countingCache{}, noopEvents{}, logger.NewNop())

	out, err := uc.ExecuteUpdateAvatar(context.Background(), UpdateAvatarInput{
		OwnerID: ownerID,
		File:    strings.NewReader("fake image bytes"),
		Size:    1024,
	})

	require.NoError(t, err)
	assert.Equal(t, uploader.url, out.AvatarURL)
	assert.Equal(t, uploader.url, repo.avatarURL)
}

func TestExecuteUpdateAvatar_TooLarge(t *testing.T) {
	uc := NewProfileUseCase(&fakeProfileRepo{}, &fakeUploader{}, &countingCache{}, noopEvents{}, logger.NewNop())

	_, err := uc.ExecuteUpdateAvatar(context.Background(), UpdateAvatarInput{
		OwnerID: uuid.New(),
		File:    strings.NewReader(""),
		Size:    MaxAvatarSize + 1,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}
