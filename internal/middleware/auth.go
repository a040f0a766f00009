package middleware

import (
	"net/http"
	"strings"

	"github.com/dribbl-id/dribbl-api/internal/database"
	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/session"
	"github.com/gin-gonic/gin"
)

const loginPath = "/auth/login"

// ResolveIdentity resolves the caller's identity from the session cookie on
// every request. The user row is re-read from the store each time, so a role
// change or deactivation takes effect on the very next request. A session
// pointing at a missing or disabled user resolves to anonymous; resolution
// never rejects the request itself.
func ResolveIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := session.LoginUserID(c)
		if !ok {
			c.Next()
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, "id = ?", userID).Error; err != nil {
			// Stale session: the user no longer exists. Degrade to anonymous.
			c.Next()
			return
		}
		if !user.IsActive {
			c.Next()
			return
		}

		session.SetIdentity(c, session.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// RequireAuth aborts the request when no identity was resolved. Browser
// navigations are redirected to the login page; programmatic requests get a
// 401 JSON body.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.CurrentIdentity(c); !ok {
			if isBrowserNavigation(c) {
				c.Redirect(http.StatusFound, loginPath)
			} else {
				apierrors.Unauthorized(c, "")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 when the resolved identity does not carry the
// given role. Anonymous callers get 401, never 403, so authentication is
// always reported before authorization even on admin-only routes.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := session.CurrentIdentity(c)
		if !ok {
			if isBrowserNavigation(c) {
				c.Redirect(http.StatusFound, loginPath)
			} else {
				apierrors.Unauthorized(c, "")
			}
			c.Abort()
			return
		}
		if identity.Role != role {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// isBrowserNavigation distinguishes plain page navigations from AJAX/API
// calls. XMLHttpRequest marks the request programmatic regardless of Accept.
func isBrowserNavigation(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
