package auth

import (
	"context"

	"github.com/checadormx/checador-backend-go/internal/domain/auth"
	"github.com/checadormx/checador-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues admin sessions. There is a single admin identity;
// the credential is a password checked against a configured hash.
type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type authService struct {
	adminPasswordHash string
	jwtService        jwt.Service
}

func NewAuthService(adminPasswordHash string, jwtService jwt.Service) AuthService {
	return &authService{
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login implements AuthService.
func (s *authService) Login(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
