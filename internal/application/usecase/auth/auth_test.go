package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/user"
	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/auth"
	"github.com/portify/portify-api/pkg/logger"
)

type fakeUserRepo struct {
	users []*user.User
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperror.NewConflict("user", "email", u.Email)
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

type fakeProfileRepo struct {
	profiles []*profile.Profile
}

func (r *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) error {
	r.profiles = append(r.profiles, p)
	return nil
}

func (r *fakeProfileRepo) Update(context.Context, *profile.Profile) error           { return nil }
func (r *fakeProfileRepo) UpdateAvatarURL(context.Context, uuid.UUID, string) error { return nil }

func (r *fakeProfileRepo) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("profile", ownerID.String())
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("profile", username)
}

func (r *fakeProfileRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, p := range r.profiles {
		if p.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessions struct {
	revoked map[string]time.Duration
}

func (s *fakeSessions) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[jti] = ttl
	return nil
}

func (s *fakeSessions) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func newJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour)
}

func TestSignUp_CreatesUserAndPublicProfile(t *testing.T) {
	users := &fakeUserRepo{}
	profiles := &fakeProfileRepo{}
	uc := NewSignUpUseCase(users, profiles, newJWTService(), logger.NewNop())

	out, err := uc.Execute(context.Background(), SignUpInput{
		Email:    " Ada@Example.com ",
		Password: "correct horse",
		FullName: "Ada Lovelace",
		Username: " Ada_Lovelace ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "ada_lovelace", out.Username)

	require.Len(t, users.users, 1)
	assert.Equal(t, "ada@example.com", users.users[0].Email)
	assert.NotEqual(t, "correct horse", users.users[0].PasswordHash)

	require.Len(t, profiles.profiles, 1)
	created := profiles.profiles[0]
	assert.Equal(t, users.users[0].ID, created.OwnerID)
	assert.Equal(t, "ada_lovelace", created.Username)
	assert.True(t, created.IsPublic)
}

func TestSignUp_TakenUsernameNeverReachesIdentityLayer(t *testing.T) {
	users := &fakeUserRepo{}
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		{OwnerID: uuid.New(), Username: "ada"},
	}}
	uc := NewSignUpUseCase(users, profiles, newJWTService(), logger.NewNop())

	_, err := uc.Execute(context.Background(), SignUpInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Username: "ada",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Empty(t, users.users)
}

func TestSignUp_RejectsBadInput(t *testing.T) {
	uc := NewSignUpUseCase(&fakeUserRepo{}, &fakeProfileRepo{}, newJWTService(), logger.NewNop())
	ctx := context.Background()

	cases := []SignUpInput{
		{Email: "a@b.c", Password: "correct horse", Username: "x"},        // username too short
		{Email: "a@b.c", Password: "correct horse", Username: "bad name"}, // invalid chars
		{Email: "", Password: "correct horse", Username: "ada"},           // missing email
		{Email: "a@b.c", Password: "short", Username: "ada"},              // short password
	}
	for _, input := range cases {
		_, err := uc.Execute(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput), "%+v", input)
	}
}

func TestLogin_WrongCredentialsAreIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	users := &fakeUserRepo{users: []*user.User{
		{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hash},
	}}
	uc := NewLoginUseCase(users, newJWTService(), logger.NewNop())
	ctx := context.Background()

	_, errUnknown := uc.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"})
	_, errWrongPass := uc.Execute(ctx, LoginInput{Email: "ada@example.com", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.True(t, errors.Is(errUnknown, apperror.ErrUnauthorized))
	assert.True(t, errors.Is(errWrongPass, apperror.ErrUnauthorized))

	var appErrUnknown, appErrWrongPass *apperror.AppError
	require.True(t, errors.As(errUnknown, &appErrUnknown))
	require.True(t, errors.As(errWrongPass, &appErrWrongPass))
	assert.Equal(t, appErrUnknown.Message, appErrWrongPass.Message)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	ownerID := uuid.New()
	users := &fakeUserRepo{users: []*user.User{
		{ID: ownerID, Email: "ada@example.com", PasswordHash: hash},
	}}
	jwtSvc := newJWTService()
	uc := NewLoginUseCase(users, jwtSvc, logger.NewNop())

	out, err := uc.Execute(context.Background(), LoginInput{
		Email: "ada@example.com", Password: "correct horse",
	})

	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
}

func TestLogout_RevokesTokenJTI(t *testing.T) {
	jwtSvc := newJWTService()
	sessions := &fakeSessions{}
	uc := NewLogoutUseCase(sessions, jwtSvc, logger.NewNop())

	token, err := jwtSvc.GenerateToken(uuid.New())
	require.NoError(t, err)
	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), token))

	revoked, err := sessions.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestLogout_InvalidToken(t *testing.T) {
	uc := NewLogoutUseCase(&fakeSessions{}, newJWTService(), logger.NewNop())

	err := uc.Execute(context.Background(), "not-a-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}
