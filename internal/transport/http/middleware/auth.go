package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-commerce-api/internal/core/auth"
	"go-commerce-api/internal/domain"
	resp "go-commerce-api/internal/transport/http/response"
)

// Principal is the authenticated identity for one request. It lives in
// the gin context, never in package state.
type Principal struct {
	Username string
	Role     domain.Role
	UserID   string
}

const principalKey = "principal"

// Authenticate extracts and verifies a bearer token if one is present.
// A missing or bad token does not reject the request here; routes that
// need a principal gate on RequireAuth / RequireRole below.
func Authenticate(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if strings.HasPrefix(ah, "Bearer ") {
			claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
			if err == nil {
				if role, rerr := domain.ParseRole(claims.Role); rerr == nil {
					c.Set(principalKey, &Principal{
						Username: claims.Subject,
						Role:     role,
						UserID:   claims.UserID,
					})
				}
			}
		}
		c.Next()
	}
}

// CurrentPrincipal returns the request's principal, or nil.
func CurrentPrincipal(c *gin.Context) *Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*Principal); ok {
			return p
		}
	}
	return nil
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentPrincipal(c) == nil {
			resp.AbortMsg(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}

func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil {
			resp.AbortMsg(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !p.Role.Can(required) {
			resp.AbortMsg(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}
