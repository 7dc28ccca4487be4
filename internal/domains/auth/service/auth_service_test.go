package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdb-backend/internal/domains/auth"
	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/infrastructure/email"
	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/pkg/jwt"
	"reviewdb-backend/pkg/token"
)

// ============================================================
// FAKES
// ============================================================

type fakeUserRepo struct {
	nextID int64
	users  map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.users[u.Username]; ok {
		return nil, user.ErrUsernameTaken
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, user.ErrEmailTaken
		}
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.Username] = &cp
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, emailAddr string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == emailAddr {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) List(context.Context, string, int, int) ([]user.User, int64, error) {
	panic("not used")
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	stored, ok := f.users[u.Username]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	cp.UpdatedAt = stored.UpdatedAt.Add(time.Second)
	f.users[u.Username] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUserRepo) DeleteByUsername(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return user.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

type fakeEnqueuer struct {
	sent []email.ConfirmationEmailData
}

func (f *fakeEnqueuer) EnqueueConfirmationEmail(_ context.Context, data email.ConfirmationEmailData) error {
	f.sent = append(f.sent, data)
	return nil
}

func newAuthService() (auth.Service, *fakeUserRepo, *fakeEnqueuer, *jwt.Manager) {
	repo := newFakeUserRepo()
	enq := &fakeEnqueuer{}
	manager := jwt.NewManager("test-secret", time.Hour)
	codes := token.NewGenerator("test-secret", 24*time.Hour)
	return NewAuthService(repo, codes, manager, enq), repo, enq, manager
}

// ============================================================
// TESTS
// ============================================================

func TestSignupCreatesUserAndSendsCode(t *testing.T) {
	svc, repo, enq, _ := newAuthService()

	resp, err := svc.Signup(context.Background(), auth.SignupRequest{
		Username: "alice",
		Email:    "Alice@Example.COM",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	stored, ok := repo.users["alice"]
	require.True(t, ok)
	assert.Equal(t, access.RoleUser, stored.Role)

	require.Len(t, enq.sent, 1)
	assert.Equal(t, "alice@example.com", enq.sent[0].Email)
	assert.NotEmpty(t, enq.sent[0].Code)
}

// Signup must accept any well-formed address without resolving its domain;
// registration cannot depend on DNS being reachable or the domain existing.
func TestSignupEmailFormatOnly(t *testing.T) {
	svc, _, enq, _ := newAuthService()

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Username: "dana",
		Email:    "dana@mail.no-such-host.invalid",
	})
	require.NoError(t, err)
	assert.Len(t, enq.sent, 1)
}

func TestSignupReservedUsername(t *testing.T) {
	svc, _, enq, _ := newAuthService()

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Username: "me",
		Email:    "me@example.com",
	})
	assert.Error(t, err)
	assert.Empty(t, enq.sent)
}

func TestSignupValidation(t *testing.T) {
	svc, _, _, _ := newAuthService()
	ctx := context.Background()

	cases := []auth.SignupRequest{
		{Username: "", Email: "a@example.com"},
		{Username: "alice", Email: ""},
		{Username: "alice", Email: "not-an-email"},
		{Username: "spaces in name", Email: "a@example.com"},
	}
	for _, req := range cases {
		_, err := svc.Signup(ctx, req)
		assert.Error(t, err, "request %+v must be rejected", req)
	}
}

func TestSignupIdempotentForSamePair(t *testing.T) {
	svc, repo, enq, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	// Same pair again: no new account, just a fresh code.
	_, err = svc.Signup(ctx, auth.SignupRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	assert.Len(t, repo.users, 1)
	assert.Len(t, enq.sent, 2)
}

func TestSignupCollisions(t *testing.T) {
	svc, _, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, auth.SignupRequest{Username: "bob", Email: "other@example.com"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)

	_, err = svc.Signup(ctx, auth.SignupRequest{Username: "robert", Email: "bob@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestTokenExchange(t *testing.T) {
	svc, _, enq, manager := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, enq.sent, 1)

	resp, err := svc.Token(ctx, auth.TokenRequest{
		Username:         "alice",
		ConfirmationCode: enq.sent[0].Code,
	})
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(access.RoleUser), claims.Role)
}

func TestTokenWrongCode(t *testing.T) {
	svc, _, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Token(ctx, auth.TokenRequest{Username: "alice", ConfirmationCode: "1abc-deadbeef"})
	assert.ErrorIs(t, err, auth.ErrCodeMismatch)
}

func TestTokenUnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthService()

	_, err := svc.Token(context.Background(), auth.TokenRequest{
		Username:         "nobody",
		ConfirmationCode: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestTokenCodeRevokedByProfileChange(t *testing.T) {
	svc, repo, enq, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	code := enq.sent[0].Code

	// Any profile update bumps updated_at, which the code is bound to.
	u := repo.users["alice"]
	_, err = repo.Update(ctx, u)
	require.NoError(t, err)

	_, err = svc.Token(ctx, auth.TokenRequest{Username: "alice", ConfirmationCode: code})
	assert.ErrorIs(t, err, auth.ErrCodeMismatch)
}

func TestSignupReissueAfterCollisionKeepsCodeValid(t *testing.T) {
	svc, _, enq, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, auth.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, auth.SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, enq.sent, 2)

	// Both codes bind to identical state; either exchanges fine.
	for _, code := range []string{enq.sent[0].Code, enq.sent[1].Code} {
		_, err := svc.Token(ctx, auth.TokenRequest{Username: "alice", ConfirmationCode: code})
		assert.NoError(t, err)
	}
}
