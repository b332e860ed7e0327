package auth

import (
	"context"
	"testing"

	"github.com/checadormx/checador-backend-go/internal/domain/auth"
	"github.com/checadormx/checador-backend-go/internal/pkg/jwt"
	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(string(hash), jwtSvc)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, "correct horse battery staple")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Password: "correct horse battery staple"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "right")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := newTestService(t, "right")

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}
