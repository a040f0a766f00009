package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dribbl-id/dribbl-api/internal/constants"
	"github.com/dribbl-id/dribbl-api/internal/database"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/session"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type middlewareTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupMiddlewareTestEnv(t *testing.T) middlewareTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(ResolveIdentity())

	// Test login endpoint that skips credential checks.
	r.POST("/test-login/:id", func(c *gin.Context) {
		var user models.User
		require.NoError(t, db.First(&user, "id = ?", c.Param("id")).Error)
		require.NoError(t, session.SetLoginUser(c, &user))
		c.Status(http.StatusOK)
	})

	r.GET("/whoami", func(c *gin.Context) {
		identity, ok := session.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": identity.Username, "role": identity.Role})
	})

	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/admin-only", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return middlewareTestEnv{db: db, router: r}
}

func (env middlewareTestEnv) createUser(t *testing.T, username string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env middlewareTestEnv) login(t *testing.T, user *models.User) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test-login/"+user.ID, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func (env middlewareTestEnv) get(path string, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_Anonymous(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	w := env.get("/protected", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BrowserNavigationRedirects(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	w := env.get("/protected", nil, map[string]string{
		"Accept": "text/html,application/xhtml+xml",
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestRequireAuth_AjaxNeverRedirects(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	// X-Requested-With wins over an HTML Accept header.
	w := env.get("/protected", nil, map[string]string{
		"Accept":           "text/html",
		"X-Requested-With": "XMLHttpRequest",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AnonymousGetsUnauthorizedNotForbidden(t *testing.T) {
	env := setupMiddlewareTestEnv(t)

	w := env.get("/admin-only", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_UserForbidden(t *testing.T) {
	env := setupMiddlewareTestEnv(t)
	user := env.createUser(t, "regular", models.RoleUser)
	cookies := env.login(t, user)

	w := env.get("/admin-only", cookies, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	env := setupMiddlewareTestEnv(t)
	admin := env.createUser(t, "boss", models.RoleAdmin)
	cookies := env.login(t, admin)

	w := env.get("/admin-only", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestResolveIdentity_StaleSessionDegradesToAnonymous(t *testing.T) {
	env := setupMiddlewareTestEnv(t)
	user := env.createUser(t, "gone", models.RoleUser)
	cookies := env.login(t, user)

	// Hard-delete the user row; the session cookie still references it.
	require.NoError(t, env.db.Unscoped().Delete(&models.User{}, "id = ?", user.ID).Error)

	w := env.get("/whoami", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "anonymous")

	w = env.get("/protected", cookies, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveIdentity_DisabledUserResolvesAnonymous(t *testing.T) {
	env := setupMiddlewareTestEnv(t)
	user := env.createUser(t, "frozen", models.RoleUser)
	cookies := env.login(t, user)

	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	w := env.get("/protected", cookies, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResolveIdentity_RoleChangeTakesEffectNextRequest(t *testing.T) {
	env := setupMiddlewareTestEnv(t)
	user := env.createUser(t, "promoted", models.RoleUser)
	cookies := env.login(t, user)

	w := env.get("/admin-only", cookies, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Promote without a new login; the resolver reads the role live.
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleAdmin).Error)

	w = env.get("/admin-only", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
