package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/shared/access"
)

// ============================================================
// FAKE REPOSITORY
// ============================================================

type fakeRepo struct {
	nextID int64
	users  map[string]*user.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, users: make(map[string]*user.User)}
}

func (f *fakeRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
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

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ string, _, _ int) ([]user.User, int64, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.users[u.Username]; !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now()
	f.users[u.Username] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) DeleteByUsername(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return user.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

func seed(repo *fakeRepo, u user.User) user.User {
	created, err := repo.Create(context.Background(), &u)
	if err != nil {
		panic(err)
	}
	return *created
}

// ============================================================
// TESTS
// ============================================================

func TestCreateUserDefaultsRole(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	resp, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "carol",
		Email:    "Carol@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, string(access.RoleUser), resp.Role)
	assert.Equal(t, "carol@example.com", resp.Email)
}

// Email validation must accept any well-formed address without resolving
// its domain, so accounts on internal or not-yet-live domains register fine
// and the check works with no network at all.
func TestCreateUserEmailFormatOnly(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "dana",
		Email:    "dana@mail.no-such-host.invalid",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), user.CreateUserRequest{
		Username: "erin",
		Email:    "not-an-address",
	})
	assert.Error(t, err)
}

func TestCreateUserRejectsBadRole(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Role:     "superhero",
	})
	assert.Error(t, err)
}

func TestCreateUserRejectsReservedUsername(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	_, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "me",
		Email:    "me@example.com",
	})
	assert.Error(t, err)
}

func TestAdminUpdateChangesRole(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, user.User{Username: "carol", Email: "carol@example.com", Role: access.RoleUser})
	svc := NewUserService(repo)

	role := string(access.RoleModerator)
	resp, err := svc.Update(context.Background(), "carol", user.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, string(access.RoleModerator), resp.Role)
}

func TestSuperuserAlwaysAdmin(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, user.User{
		Username:    "root",
		Email:       "root@example.com",
		Role:        access.RoleAdmin,
		IsSuperuser: true,
	})
	svc := NewUserService(repo)

	// An admin demoting a superuser has no effect; normalization wins.
	role := string(access.RoleUser)
	resp, err := svc.Update(context.Background(), "root", user.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, string(access.RoleAdmin), resp.Role)
}

func TestUpdateMeIgnoresRole(t *testing.T) {
	repo := newFakeRepo()
	u := seed(repo, user.User{Username: "carol", Email: "carol@example.com", Role: access.RoleUser})
	svc := NewUserService(repo)

	p := access.Principal{UserID: u.ID, Username: u.Username, Role: u.Role}
	role := string(access.RoleAdmin)
	bio := "hello"
	resp, err := svc.UpdateMe(context.Background(), p, user.UpdateUserRequest{
		Role: &role,
		Bio:  &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, string(access.RoleUser), resp.Role, "self-service must not escalate")
	assert.Equal(t, "hello", resp.Bio)
}

func TestGetMe(t *testing.T) {
	repo := newFakeRepo()
	u := seed(repo, user.User{Username: "carol", Email: "carol@example.com", Role: access.RoleUser})
	svc := NewUserService(repo)

	resp, err := svc.GetMe(context.Background(), access.Principal{UserID: u.ID})
	require.NoError(t, err)
	assert.Equal(t, "carol", resp.Username)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
