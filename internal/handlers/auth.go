package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dribbl-id/dribbl-api/internal/constants"
	"github.com/dribbl-id/dribbl-api/internal/dto"
	apierrors "github.com/dribbl-id/dribbl-api/internal/errors"
	"github.com/dribbl-id/dribbl-api/internal/logger"
	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/services"
	"github.com/dribbl-id/dribbl-api/internal/session"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account. The role is accepted from the request
// body and defaults to "user".
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username" binding:"required,min=3,max=150"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	logger.Infof("user registered: %s (%s)", user.Username, user.Role)
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login verifies credentials and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Verify(services.VerifyInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	if err := h.authService.RecordLogin(user); err != nil {
		logger.Warningf("failed to record login time for %s: %v", user.Username, err)
	}
	c.SetCookie(constants.LastLoginCookie, user.LastLogin.Format("2006-01-02 15:04:05"),
		constants.SessionMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout destroys the session and its cookies. Logging out without a session
// is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := session.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(identity.UserID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserNotFound):
		// A missing username and a wrong password answer identically so the
		// login form does not leak which usernames exist.
		apierrors.RespondWithError(c, http.StatusUnauthorized,
			apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, services.ErrInvalidCredentials.Error()))
	case errors.Is(err, services.ErrAccountDisabled):
		apierrors.RespondWithError(c, http.StatusUnauthorized,
			apierrors.NewAPIError(apierrors.ErrCodeAccountDisabled, err.Error()))
	default:
		logger.Errorf("auth handler: %v", err)
		apierrors.InternalError(c, "Internal server error")
	}
}
