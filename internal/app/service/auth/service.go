package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitpulse/gymadmin/internal/models"
	cfgpkg "github.com/fitpulse/gymadmin/pkg/config"
	"github.com/fitpulse/gymadmin/pkg/logctx"
	"github.com/fitpulse/gymadmin/pkg/tool"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrDuplicateEmail     = errors.New("an admin with this email already exists")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	cfg *cfgpkg.Config
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *cfgpkg.Config) *Service {
	return &Service{db: db, log: log, cfg: cfg}
}

type LoginResult struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// Login checks the admin's password and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string, now time.Time) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ? AND is_active = true", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(admin.ID, admin.Email, now)
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("admin logged in", "admin_id", admin.ID)
	return &LoginResult{Token: token, Admin: &admin}, nil
}

// Verify validates a bearer token and returns the admin it belongs to.
func (s *Service) Verify(ctx context.Context, tokenStr string) (*models.Admin, error) {
	claims, err := s.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("id = ? AND is_active = true", claims.AdminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	return &admin, nil
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Service) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*models.Admin, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           tool.GenerateUUIDV7(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("admin created", "admin_id", admin.ID)
	return admin, nil
}

func (s *Service) GetAdmin(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	return &admin, nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	var admins []*models.Admin
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

type UpdateAdminRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
	// Password, when non-empty, rotates the admin's password.
	Password string `json:"password"`
}

func (s *Service) UpdateAdmin(ctx context.Context, id string, req *UpdateAdminRequest) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		admin.Name = name
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.Auth.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.db.WithContext(ctx).Save(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return &admin, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Admin{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
