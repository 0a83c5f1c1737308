// File: services/admin/service.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	adminRepo "tidyops/database/repository/admin"
	"tidyops/models"
	"tidyops/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrInvalidCredentials covers unknown emails and wrong passwords
	// alike, so sign-in failures leak nothing about which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken marks a registration against an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// Service handles admin account lifecycle and authentication.
type Service struct {
	Admins adminRepo.Repository
	Logger *zap.Logger
}

// NewService wires the admin service.
func NewService(admins adminRepo.Repository, logger *zap.Logger) *Service {
	return &Service{Admins: admins, Logger: logger}
}

// Register creates an admin account for a company and signs it in.
func (s *Service) Register(name, email, companyID, password string) (*models.Admin, string, error) {
	existing, err := s.Admins.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := &models.Admin{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Admins.Create(admin); err != nil {
		return nil, "", fmt.Errorf("failed to create admin: %w", err)
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return nil, "", err
	}

	s.Logger.Info("admin registered",
		zap.String("adminId", admin.ID),
		zap.String("companyId", admin.CompanyID),
	)
	return admin, token, nil
}

// SignIn verifies credentials and issues a fresh token. Issuing a new
// token invalidates any previously issued one.
func (s *Service) SignIn(email, password string) (*models.Admin, string, error) {
	admin, err := s.Admins.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	s.dropCachedAuth(admin.TokenHash)
	token, err := s.issueToken(admin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// SignOut revokes the admin's current token.
func (s *Service) SignOut(adminID string) error {
	admin, err := s.Admins.GetByID(adminID)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	s.dropCachedAuth(admin.TokenHash)
	if err := s.Admins.SetTokenHash(adminID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *Service) issueToken(admin *models.Admin) (string, error) {
	token, err := utils.GenerateToken(admin.ID, admin.Email, "admin", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Admins.SetTokenHash(admin.ID, utils.HashToken(token)); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// dropCachedAuth clears the auth-cache entry for a revoked token hash so
// revocation takes effect before the cache TTL expires.
func (s *Service) dropCachedAuth(tokenHash string) {
	if tokenHash == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+tokenHash).Err(); err != nil {
		s.Logger.Warn("failed to drop cached auth entry", zap.Error(err))
	}
}
