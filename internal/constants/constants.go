package constants

// Session
const (
	SessionCookieName = "dribbl_session"
	LastLoginCookie   = "dribbl_last_login"

	// SessionKeyUserID is the key under which the authenticated user's ID is
	// stored in the session.
	SessionKeyUserID   = "user_id"
	SessionKeyUsername = "username"
	SessionKeyRole     = "role"

	// ContextKeyIdentity is the gin context key holding the resolved Identity.
	ContextKeyIdentity = "identity"

	SessionMaxAge = 86400 * 7 // 7 days
)

// Validation
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 150
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
