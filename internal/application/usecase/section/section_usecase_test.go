package section

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/portify/portify-api/internal/domain/section"

	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/portfolio"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

// fakeRepo is an in-memory section.Repository. Rows keep insertion order,
// which matches sort order because Add assigns increasing positions.
type fakeRepo[T domain.Entity] struct {
	mu    sync.Mutex
	ident func(T) (id, profileID uuid.UUID)
	rows  []T
	next  map[uuid.UUID]int
}

func newFakeRepo[T domain.Entity](ident func(T) (uuid.UUID, uuid.UUID)) *fakeRepo[T] {
	return &fakeRepo[T]{ident: ident, next: make(map[uuid.UUID]int)}
}

func (r *fakeRepo[T]) Insert(_ context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, e)
	return nil
}

func (r *fakeRepo[T]) Update(_ context.Context, e T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, profileID := r.ident(e)
	for i, row := range r.rows {
		rowID, rowProfileID := r.ident(row)
		if rowID == id && rowProfileID == profileID {
			r.rows[i] = e
			return nil
		}
	}
	return apperror.NewNotAuthenticated("update matched no row")
}

func (r *fakeRepo[T]) Delete(_ context.Context, id, profileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		rowID, rowProfileID := r.ident(row)
		if rowID == id && rowProfileID == profileID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotAuthenticated("delete matched no row")
}

func (r *fakeRepo[T]) ListByProfile(_ context.Context, profileID uuid.UUID) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0)
	for _, row := range r.rows {
		_, rowProfileID := r.ident(row)
		if rowProfileID == profileID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepo[T]) CountByProfile(ctx context.Context, profileID uuid.UUID) (int, error) {
	rows, err := r.ListByProfile(ctx, profileID)
	return len(rows), err
}

func (r *fakeRepo[T]) NextSortOrder(_ context.Context, profileID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.next[profileID]
	r.next[profileID] = n + 1
	return n, nil
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *fakeCache) Get(context.Context, uuid.UUID) (*portfolio.Sections, error)  { return nil, nil }
func (c *fakeCache) Set(context.Context, uuid.UUID, *portfolio.Sections) error    { return nil }
func (c *fakeCache) Invalidate(context.Context, uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

func (c *fakeCache) invalidations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated
}

type fakeEvents struct {
	mu       sync.Mutex
	sections []string
}

func (e *fakeEvents) PublishPortfolioUpdated(_ context.Context, _ uuid.UUID, sectionKind string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sections = append(e.sections, sectionKind)
	return nil
}

func (e *fakeEvents) published() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sections)
}

func skillIdent(s *skill.Skill) (uuid.UUID, uuid.UUID) { return s.ID, s.ProfileID }

func newSkillUseCase() (*UseCase[*skill.Skill], *fakeRepo[*skill.Skill], *fakeCache, *fakeEvents) {
	repo := newFakeRepo(skillIdent)
	cache := &fakeCache{}
	events := &fakeEvents{}
	uc := NewUseCase[*skill.Skill](repo, cache, events, logger.NewNop())
	return uc, repo, cache, events
}

func TestAdd_AppendsSortOrderAndStampsOwner(t *testing.T) {
	uc, _, _, _ := newSkillUseCase()
	ownerID := uuid.New()
	ctx := context.Background()

	names := []string{"Go", "Postgres", "Kafka"}
	for i, name := range names {
		created, err := uc.Add(ctx, ownerID, &skill.Skill{Name: name, Level: 3})
		require.NoError(t, err)

		assert.Equal(t, ownerID, created.ProfileID)
		assert.Equal(t, i, created.SortOrder)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	}

	listed, err := uc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, s := range listed {
		assert.Equal(t, names[i], s.Name)
		assert.Equal(t, i, s.SortOrder)
	}
}

func TestAdd_OwnerComesFromSessionNotPayload(t *testing.T) {
	uc, _, _, _ := newSkillUseCase()
	ownerID := uuid.New()

	// A forged profile id in the payload is overwritten.
	created, err := uc.Add(context.Background(), ownerID, &skill.Skill{
		Name: "Go", Level: 3, ProfileID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, created.ProfileID)
}

func TestAdd_ValidationRejectedBeforeStore(t *testing.T) {
	uc, repo, cache, _ := newSkillUseCase()

	_, err := uc.Add(context.Background(), uuid.New(), &skill.Skill{Name: "Go", Level: 9})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, repo.rows)
	assert.Equal(t, 0, cache.invalidations())
}

func TestAdd_NormalizesBeforeValidation(t *testing.T) {
	uc, _, _, _ := newSkillUseCase()

	created, err := uc.Add(context.Background(), uuid.New(), &skill.Skill{Name: "  Go  ", Level: 2})

	require.NoError(t, err)
	assert.Equal(t, "Go", created.Name)
}

func TestUpdate_WrongOwnerIsUnauthenticated(t *testing.T) {
	uc, _, _, _ := newSkillUseCase()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := uc.Add(ctx, ownerID, &skill.Skill{Name: "Go", Level: 3})
	require.NoError(t, err)

	otherOwner := uuid.New()
	err = uc.Update(ctx, otherOwner, created.ID, &skill.Skill{Name: "Hijacked", Level: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))

	// Stored row is untouched.
	listed, err := uc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Go", listed[0].Name)
}

func TestUpdate_OwnRow(t *testing.T) {
	uc, _, _, _ := newSkillUseCase()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := uc.Add(ctx, ownerID, &skill.Skill{Name: "Go", Level: 3})
	require.NoError(t, err)

	err = uc.Update(ctx, ownerID, created.ID, &skill.Skill{Name: "Golang", Level: 5})
	require.NoError(t, err)

	listed, err := uc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Golang", listed[0].Name)
	assert.Equal(t, 5, listed[0].Level)
}

func TestDelete_SecondCallChangesNothing(t *testing.T) {
	uc, repo, _, _ := newSkillUseCase()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := uc.Add(ctx, ownerID, &skill.Skill{Name: "Go", Level: 3})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, ownerID, created.ID))
	assert.Empty(t, repo.rows)

	// Same error class as an unauthenticated caller, and no state change.
	err = uc.Delete(ctx, ownerID, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
	assert.Empty(t, repo.rows)
}

func TestMutations_InvalidateCacheAndPublish(t *testing.T) {
	uc, _, cache, events := newSkillUseCase()
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := uc.Add(ctx, ownerID, &skill.Skill{Name: "Go", Level: 3})
	require.NoError(t, err)
	require.NoError(t, uc.Update(ctx, ownerID, created.ID, &skill.Skill{Name: "Go", Level: 4}))
	require.NoError(t, uc.Delete(ctx, ownerID, created.ID))

	assert.Equal(t, 3, cache.invalidations())

	// Events publish on a detached goroutine.
	assert.Eventually(t, func() bool { return events.published() == 3 },
		2*time.Second, 10*time.Millisecond)
}

func TestAdd_OngoingExperienceNullsEndDate(t *testing.T) {
	repo := newFakeRepo(func(e *experience.Experience) (uuid.UUID, uuid.UUID) {
		return e.ID, e.ProfileID
	})
	uc := NewUseCase[*experience.Experience](repo, &fakeCache{}, &fakeEvents{}, logger.NewNop())

	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.Add(context.Background(), uuid.New(), &experience.Experience{
		Company:   "Acme",
		Role:      "Engineer",
		EndDate:   &end,
		IsCurrent: true,
	})

	require.NoError(t, err)
	assert.Nil(t, created.EndDate)
}
