package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/internal/shared/response"
	"reviewdb-backend/pkg/jwt"
)

const principalKey = "principal"

// Authenticate requires a valid bearer token and puts the resulting
// principal into the request context.
func Authenticate(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFromHeader(c, manager)
		if !ok {
			return
		}
		if !p.Authenticated() {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// MaybeAuthenticate resolves credentials when present so public reads
// work anonymously but still see who is asking. A malformed or expired
// token is rejected rather than silently downgraded.
func MaybeAuthenticate(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Set(principalKey, access.Anonymous())
			c.Next()
			return
		}

		p, ok := principalFromHeader(c, manager)
		if !ok {
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequirePermission consults the access policy for actions that do not
// depend on resource ownership. Ownership-sensitive checks live in the
// services, next to the data that knows the owner.
func RequirePermission(action access.Action, res access.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := access.Authorize(CurrentPrincipal(c), action, res, 0)
		switch err {
		case nil:
			c.Next()
		case access.ErrUnauthenticated:
			response.Unauthorized(c, "authentication required")
			c.Abort()
		default:
			response.Forbidden(c, "permission denied")
			c.Abort()
		}
	}
}

// CurrentPrincipal returns the caller set by the auth middleware,
// falling back to anonymous on unauthenticated routes.
func CurrentPrincipal(c *gin.Context) access.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(access.Principal); ok {
			return p
		}
	}
	return access.Anonymous()
}

// principalFromHeader parses "Authorization: Bearer <token>". On failure
// it writes the 401 itself and reports ok=false.
func principalFromHeader(c *gin.Context, manager *jwt.Manager) (access.Principal, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		c.Abort()
		return access.Principal{}, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return access.Principal{}, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid token")
		c.Abort()
		return access.Principal{}, false
	}

	role, err := access.ParseRole(claims.Role)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		c.Abort()
		return access.Principal{}, false
	}

	return access.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, true
}
