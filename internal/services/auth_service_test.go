package services

import (
	"context"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterThenLogin(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	user, err := env.authService.Register(ctx, RegisterInput{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pw", user.PasswordHash)

	result, err := env.authService.Login(ctx, LoginInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	claims, err := env.authService.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestAuthService_PasswordIsHashed(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Password: "plaintext"})
	require.NoError(t, err)

	stored, err := env.store.Users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotContains(t, stored.PasswordHash, "plaintext")
	assert.Contains(t, stored.PasswordHash, "$2a$10$")
}

func TestAuthService_EmailIsCaseInsensitive(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: " Ann@Example.COM ", Password: "pw"})
	require.NoError(t, err)

	_, err = env.authService.Login(ctx, LoginInput{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = env.authService.Register(ctx, RegisterInput{Name: "Ann 2", Email: "ANN@example.com", Password: "pw"})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Password: "other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.AlreadyExists))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "pw"}, ErrNameRequired},
		{"blank email", RegisterInput{Name: "Ann", Email: "  ", Password: "pw"}, ErrEmailRequired},
		{"missing password", RegisterInput{Name: "Ann", Email: "a@x.com"}, ErrPasswordRequired},
		{"password too long", RegisterInput{Name: "Ann", Email: "a@x.com", Password: strings.Repeat("p", 80)}, ErrPasswordTooLong},
		{"name too long", RegisterInput{Name: strings.Repeat("n", 256), Email: "a@x.com", Password: "pw"}, ErrNameTooLong},
		{"email too long", RegisterInput{Name: "Ann", Email: strings.Repeat("e", 250) + "@x.com", Password: "pw"}, ErrEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.authService.Register(context.Background(), tt.input)
			assert.Equal(t, tt.want, err)
			assert.True(t, errors.Is(err, errors.NotValid))
		})
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, wrongPassword := env.authService.Login(ctx, LoginInput{Email: "a@x.com", Password: "nope"})
	_, unknownEmail := env.authService.Login(ctx, LoginInput{Email: "b@x.com", Password: "pw"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, ErrInvalidCredentials, wrongPassword)
	assert.Equal(t, ErrInvalidCredentials, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.True(t, errors.Is(wrongPassword, errors.Unauthorized))
}

func TestAuthService_LongestPasswordRoundTrips(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	password := strings.Repeat("p", 72)

	_, err := env.authService.Register(ctx, RegisterInput{Name: "Ann", Email: "a@x.com", Password: password})
	require.NoError(t, err)

	_, err = env.authService.Login(ctx, LoginInput{Email: "a@x.com", Password: password})
	assert.NoError(t, err)
}
