// Package access is the single place where the role model and the
// per-resource permission rules live. Handlers and middleware consult it
// instead of re-deriving role checks inline.
package access

import (
	"errors"
	"fmt"
)

// ============================================================
// ROLES
// ============================================================

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// roleLevels orders roles so "at least moderator" checks stay trivial.
var roleLevels = map[Role]int{
	RoleAnonymous: 0,
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

func (r Role) Level() int {
	return roleLevels[r]
}

func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok && r != RoleAnonymous
}

// AtLeast reports whether r ranks equal to or above other.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

// ParseRole maps a stored role string to a Role. Anonymous is not a
// storable role and is rejected.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// ============================================================
// PRINCIPAL
// ============================================================

// Principal is the authenticated (or anonymous) caller of a request.
type Principal struct {
	UserID   int64
	Username string
	Role     Role
}

// Anonymous is the principal for requests with no credentials.
func Anonymous() Principal {
	return Principal{Role: RoleAnonymous}
}

func (p Principal) Authenticated() bool {
	return p.UserID != 0 && p.Role != RoleAnonymous
}

// ============================================================
// RESOURCES, ACTIONS, POLICY
// ============================================================

type Resource string

const (
	ResourceCategory  Resource = "category"
	ResourceGenre     Resource = "genre"
	ResourceTitle     Resource = "title"
	ResourceReview    Resource = "review"
	ResourceComment   Resource = "comment"
	ResourceUserAdmin Resource = "user_admin"
	ResourceUserSelf  Resource = "user_self"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// rule says who may perform one action on one resource.
type rule struct {
	anonymous     bool   // no credentials needed
	authenticated bool   // any signed-in role
	owner         bool   // the resource owner
	roles         []Role // specific roles, regardless of ownership
}

var publicRead = rule{anonymous: true}

// policy is the authoritative permission table. A missing entry denies.
var policy = map[Resource]map[Action]rule{
	ResourceCategory: {
		ActionList:   publicRead,
		ActionCreate: {roles: []Role{RoleAdmin}},
		ActionDelete: {roles: []Role{RoleAdmin}},
	},
	ResourceGenre: {
		ActionList:   publicRead,
		ActionCreate: {roles: []Role{RoleAdmin}},
		ActionDelete: {roles: []Role{RoleAdmin}},
	},
	ResourceTitle: {
		ActionList:     publicRead,
		ActionRetrieve: publicRead,
		ActionCreate:   {roles: []Role{RoleAdmin}},
		ActionUpdate:   {roles: []Role{RoleAdmin}},
		ActionDelete:   {roles: []Role{RoleAdmin}},
	},
	ResourceReview: {
		ActionList:     publicRead,
		ActionRetrieve: publicRead,
		ActionCreate:   {authenticated: true},
		ActionUpdate:   {owner: true, roles: []Role{RoleModerator, RoleAdmin}},
		ActionDelete:   {owner: true, roles: []Role{RoleModerator, RoleAdmin}},
	},
	ResourceComment: {
		ActionList:     publicRead,
		ActionRetrieve: publicRead,
		ActionCreate:   {authenticated: true},
		ActionUpdate:   {owner: true, roles: []Role{RoleModerator, RoleAdmin}},
		ActionDelete:   {owner: true, roles: []Role{RoleModerator, RoleAdmin}},
	},
	ResourceUserAdmin: {
		ActionList:     {roles: []Role{RoleAdmin}},
		ActionRetrieve: {roles: []Role{RoleAdmin}},
		ActionCreate:   {roles: []Role{RoleAdmin}},
		ActionUpdate:   {roles: []Role{RoleAdmin}},
		ActionDelete:   {roles: []Role{RoleAdmin}},
	},
	ResourceUserSelf: {
		ActionRetrieve: {owner: true},
		ActionUpdate:   {owner: true},
	},
}

// ============================================================
// EVALUATION
// ============================================================

var (
	// ErrUnauthenticated means credentials are required and absent.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the caller is known but not allowed.
	ErrForbidden = errors.New("permission denied")
)

// Authorize decides whether p may perform action on a resource owned by
// ownerID (pass 0 when ownership is not meaningful for the resource).
func Authorize(p Principal, action Action, res Resource, ownerID int64) error {
	r, ok := policy[res][action]
	if !ok {
		if !p.Authenticated() {
			return ErrUnauthenticated
		}
		return ErrForbidden
	}

	if r.anonymous {
		return nil
	}

	if !p.Authenticated() {
		return ErrUnauthenticated
	}

	if r.authenticated {
		return nil
	}

	if r.owner && ownerID != 0 && p.UserID == ownerID {
		return nil
	}

	for _, allowed := range r.roles {
		if p.Role == allowed {
			return nil
		}
	}

	return ErrForbidden
}
