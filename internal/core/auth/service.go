// Package auth
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"pulsedeck-server/internal/config"
	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
	"pulsedeck-server/internal/pkg"
)

type service struct {
	repo domain.UserRepository
	cfg  *config.Config
}

func NewService(repo domain.UserRepository, cfg *config.Config) domain.AuthService {
	return &service{repo: repo, cfg: cfg}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := pkg.GenerateToken(user.ID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		AccessToken: token,
		User:        user,
	}, nil
}

// SeedAdmin creates the initial admin account from the environment on an
// empty user table. A populated table wins over the env values.
func SeedAdmin(ctx context.Context, repo domain.UserRepository, cfg *config.Config, log logger.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	count, err := repo.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{Email: cfg.AdminEmail, Password: string(hashed)}
	if err := repo.CreateUser(ctx, user); err != nil {
		return err
	}

	log.Info("seeded admin user", "email", cfg.AdminEmail)
	return nil
}
