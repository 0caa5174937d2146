package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// RequireAuth validates the Authorization bearer header and attaches the
// token claims to the request context. It fails closed: any missing,
// malformed or expired credential terminates the request with 401 before the
// handler runs.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.claimsFromHeader(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid credential is present but never
// aborts. Used by public routes that personalize their response for
// authenticated users.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := a.claimsFromHeader(c); err == nil {
			c.Set(claimsKey, claims)
		}
		c.Next()
	}
}

func (a *Authenticator) claimsFromHeader(c *gin.Context) (*Claims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, ErrInvalidToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}
	return a.ParseToken(parts[1])
}

// RequireAdmin terminates the request with 403 unless the attached claims
// carry the admin flag. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: you must be admin"})
			return
		}
		c.Next()
	}
}

// RequireAdminOrSponsor terminates the request with 403 unless the attached
// claims carry the admin or sponsor flag. Must run after RequireAuth.
func RequireAdminOrSponsor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok || (!claims.IsAdmin && !claims.IsSponsor) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: you must be admin or sponsor"})
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the claims attached to the request, if any.
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
