package services

import (
	"testing"

	"github.com/dribbl-id/dribbl-api/internal/models"
	"github.com/dribbl-id/dribbl-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authServiceTestEnv struct {
	db       *gorm.DB
	service  *AuthService
	userRepo repository.UserRepository
}

func setupAuthServiceTestEnv(t *testing.T) authServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	return authServiceTestEnv{
		db:       db,
		service:  NewAuthService(userRepo),
		userRepo: userRepo,
	}
}

func TestAuthService_Register(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	user, err := env.service.Register(RegisterInput{
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, models.RoleUser, user.Role)
	require.True(t, user.IsActive)

	// The credential is stored hashed, never in plaintext.
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestAuthService_Register_ExplicitAdminRole(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	user, err := env.service.Register(RegisterInput{
		Username: "boss",
		Password: "supersecret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = env.service.Register(RegisterInput{Username: "alice", Password: "othersecret"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	// No second row was created.
	count, err := env.userRepo.Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestAuthService_Register_Validation(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Register(RegisterInput{Username: "   ", Password: "supersecret"})
	require.ErrorIs(t, err, ErrUsernameRequired)

	_, err = env.service.Register(RegisterInput{Username: "shortpw", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = env.service.Register(RegisterInput{Username: "badrole", Password: "supersecret", Role: "superuser"})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_Verify(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	registered, err := env.service.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	user, err := env.service.Verify(VerifyInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Verify_UnknownUsername(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Verify(VerifyInput{Username: "ghost", Password: "whatever1"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Verify_WrongPassword(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	_, err := env.service.Register(RegisterInput{Username: "bob", Password: "rightpassword"})
	require.NoError(t, err)

	_, err = env.service.Verify(VerifyInput{Username: "bob", Password: "incorrect"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Verify_DisabledAccount(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	user, err := env.service.Register(RegisterInput{Username: "frozen", Password: "supersecret"})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, env.userRepo.Update(user))

	_, err = env.service.Verify(VerifyInput{Username: "frozen", Password: "supersecret"})
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_SetRole(t *testing.T) {
	env := setupAuthServiceTestEnv(t)

	user, err := env.service.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	updated, err := env.service.SetRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, updated.Role)

	fetched, err := env.service.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, fetched.Role)

	_, err = env.service.SetRole(user.ID, "superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}
