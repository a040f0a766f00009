// Package session wraps gin-contrib/sessions with typed accessors for the
// login state and exposes the per-request Identity resolved from it.
package session

import (
	"github.com/dribbl-id/dribbl-api/internal/constants"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Identity is the resolved caller of a request. A request either carries an
// Identity in its context (authenticated) or none at all (anonymous); handlers
// check presence explicitly instead of testing zero values.
type Identity struct {
	UserID   string
	Username string
	Role     models.Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// SetLoginUser records the authenticated user in the session and saves it.
// Username and role are stored alongside the ID as a login-time snapshot; the
// resolver still re-reads the user row each request, so the snapshot only
// serves logging and session inspection.
func SetLoginUser(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(constants.SessionKeyUserID, user.ID)
	s.Set(constants.SessionKeyUsername, user.Username)
	s.Set(constants.SessionKeyRole, string(user.Role))
	return s.Save()
}

// LoginUserID returns the user ID stored in the session, if any.
func LoginUserID(c *gin.Context) (string, bool) {
	s := sessions.Default(c)
	v := s.Get(constants.SessionKeyUserID)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Clear destroys the session and expires its cookie along with the auxiliary
// last-login cookie. Clearing an already-empty session is a no-op.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(constants.LastLoginCookie, "", -1, "/", "", false, true)
	return nil
}

// SetIdentity attaches the resolved identity to the request context.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(constants.ContextKeyIdentity, identity)
}

// CurrentIdentity returns the identity resolved for this request. The second
// return value is false for anonymous callers.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	if !ok {
		return Identity{}, false
	}
	return identity, true
}
