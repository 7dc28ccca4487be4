package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	anon      = Anonymous()
	plainUser = Principal{UserID: 10, Username: "reader", Role: RoleUser}
	moderator = Principal{UserID: 20, Username: "mod", Role: RoleModerator}
	admin     = Principal{UserID: 30, Username: "root", Role: RoleAdmin}
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleAnonymous))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, RoleAnonymous.AtLeast(RoleUser))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("moderator")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, r)

	_, err = ParseRole("anonymous")
	assert.Error(t, err, "anonymous is not a storable role")

	_, err = ParseRole("superhero")
	assert.Error(t, err)
}

func TestAuthorize_PublicRead(t *testing.T) {
	for _, res := range []Resource{ResourceCategory, ResourceGenre, ResourceTitle, ResourceReview, ResourceComment} {
		assert.NoError(t, Authorize(anon, ActionList, res, 0), "anonymous list %s", res)
	}
	assert.NoError(t, Authorize(anon, ActionRetrieve, ResourceTitle, 0))
	assert.NoError(t, Authorize(anon, ActionRetrieve, ResourceReview, 0))
}

func TestAuthorize_CatalogWritesAreAdminOnly(t *testing.T) {
	for _, res := range []Resource{ResourceCategory, ResourceGenre, ResourceTitle} {
		for _, act := range []Action{ActionCreate, ActionDelete} {
			assert.ErrorIs(t, Authorize(anon, act, res, 0), ErrUnauthenticated, "%s %s anon", act, res)
			assert.ErrorIs(t, Authorize(plainUser, act, res, 0), ErrForbidden, "%s %s user", act, res)
			assert.ErrorIs(t, Authorize(moderator, act, res, 0), ErrForbidden, "%s %s moderator", act, res)
			assert.NoError(t, Authorize(admin, act, res, 0), "%s %s admin", act, res)
		}
	}
}

func TestAuthorize_ReviewCreate(t *testing.T) {
	assert.ErrorIs(t, Authorize(anon, ActionCreate, ResourceReview, 0), ErrUnauthenticated)
	assert.NoError(t, Authorize(plainUser, ActionCreate, ResourceReview, 0))
	assert.NoError(t, Authorize(moderator, ActionCreate, ResourceReview, 0))
	assert.NoError(t, Authorize(admin, ActionCreate, ResourceReview, 0))
}

func TestAuthorize_OwnerModeration(t *testing.T) {
	ownerID := plainUser.UserID

	for _, res := range []Resource{ResourceReview, ResourceComment} {
		for _, act := range []Action{ActionUpdate, ActionDelete} {
			// owner may touch their own resource
			assert.NoError(t, Authorize(plainUser, act, res, ownerID))
			// another plain user may not
			other := Principal{UserID: 99, Username: "other", Role: RoleUser}
			assert.ErrorIs(t, Authorize(other, act, res, ownerID), ErrForbidden)
			// moderator and admin override ownership
			assert.NoError(t, Authorize(moderator, act, res, ownerID))
			assert.NoError(t, Authorize(admin, act, res, ownerID))
			// anonymous is asked to authenticate, not told forbidden
			assert.ErrorIs(t, Authorize(anon, act, res, ownerID), ErrUnauthenticated)
		}
	}
}

func TestAuthorize_UserAdministration(t *testing.T) {
	for _, act := range []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionDelete} {
		assert.ErrorIs(t, Authorize(anon, act, ResourceUserAdmin, 0), ErrUnauthenticated)
		assert.ErrorIs(t, Authorize(plainUser, act, ResourceUserAdmin, 0), ErrForbidden)
		assert.ErrorIs(t, Authorize(moderator, act, ResourceUserAdmin, 0), ErrForbidden,
			"moderators have no user administration rights")
		assert.NoError(t, Authorize(admin, act, ResourceUserAdmin, 0))
	}
}

func TestAuthorize_SelfProfile(t *testing.T) {
	assert.NoError(t, Authorize(plainUser, ActionRetrieve, ResourceUserSelf, plainUser.UserID))
	assert.NoError(t, Authorize(plainUser, ActionUpdate, ResourceUserSelf, plainUser.UserID))
	assert.ErrorIs(t, Authorize(anon, ActionRetrieve, ResourceUserSelf, 0), ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(plainUser, ActionUpdate, ResourceUserSelf, 999), ErrForbidden)
}

func TestAuthorize_UnknownActionDenies(t *testing.T) {
	assert.ErrorIs(t, Authorize(plainUser, ActionUpdate, ResourceCategory, 0), ErrForbidden,
		"categories cannot be updated, only replaced")
	assert.ErrorIs(t, Authorize(anon, ActionUpdate, ResourceCategory, 0), ErrUnauthenticated)
}
