package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobin/character-vault/internal/repository/postgres"
	"github.com/tobin/character-vault/internal/service"
	"github.com/tobin/character-vault/internal/testutil"
)

func TestAuthService_Register(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				DisplayName: "newuser",
				Password:    "password123",
			},
			checkUser: true,
		},
		{
			name: "duplicate display name",
			input: service.RegisterInput{
				DisplayName: "existinguser",
				Password:    "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithDisplayName("existinguser").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrDisplayNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			if tt.checkUser {
				assert.Equal(t, tt.input.DisplayName, result.User.DisplayName)
				assert.NotZero(t, result.User.ID)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := authService.Login(ctx, service.LoginInput{
			DisplayName: user.DisplayName,
			Password:    password,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Login(ctx, service.LoginInput{
			DisplayName: user.DisplayName,
			Password:    "wrong-password",
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown display name", func(t *testing.T) {
		_, err := authService.Login(ctx, service.LoginInput{
			DisplayName: "nobody",
			Password:    password,
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
	login, err := authService.Login(ctx, service.LoginInput{
		DisplayName: user.DisplayName,
		Password:    password,
	})
	require.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		result, err := authService.RefreshTokens(ctx, user.ID, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEqual(t, login.RefreshToken, result.RefreshToken)
	})

	t.Run("stale refresh token is rejected", func(t *testing.T) {
		_, err := authService.RefreshTokens(ctx, user.ID, login.RefreshToken)
		assert.ErrorIs(t, err, service.ErrInvalidRefresh)
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		fresh, err := authService.Login(ctx, service.LoginInput{
			DisplayName: user.DisplayName,
			Password:    password,
		})
		require.NoError(t, err)

		require.NoError(t, authService.Logout(ctx, user.ID))

		_, err = authService.RefreshTokens(ctx, user.ID, fresh.RefreshToken)
		assert.ErrorIs(t, err, service.ErrInvalidRefresh)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)
	login, err := authService.Login(ctx, service.LoginInput{
		DisplayName: user.DisplayName,
		Password:    password,
	})
	require.NoError(t, err)

	t.Run("accepts its own access token", func(t *testing.T) {
		claims, err := authService.ValidateToken(login.AccessToken)
		require.NoError(t, err)
		sub, ok := (*claims)["sub"].(float64)
		require.True(t, ok)
		assert.Equal(t, user.ID, uint(sub))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := authService.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
