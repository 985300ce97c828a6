package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitpulse/gymadmin/internal/app/service/membership"
	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/logctx"
	"github.com/fitpulse/gymadmin/pkg/tool"
	"github.com/fitpulse/gymadmin/pkg/types"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrDuplicateDocument = errors.New("a member with this document already exists")
	ErrInvalidInput      = errors.New("invalid member data")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreateMemberRequest struct {
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Document       string               `json:"document"`
	Email          *string              `json:"email"`
	Phone          *string              `json:"phone"`
	Address        *string              `json:"address"`
	BirthDate      *time.Time           `json:"birth_date"`
	MembershipType types.MembershipType `json:"membership_type"`
	MonthlyFee     decimal.Decimal      `json:"monthly_fee"`
	Notes          *string              `json:"notes"`
}

func (r *CreateMemberRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Document = strings.TrimSpace(r.Document)
	if r.MembershipType == "" {
		r.MembershipType = types.MembershipTypeMonthly
	}
}

func (r *CreateMemberRequest) validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Document == "" {
		return fmt.Errorf("%w: first name, last name and document are required", ErrInvalidInput)
	}
	if !r.MembershipType.Valid() {
		return fmt.Errorf("%w: unknown membership type %s", ErrInvalidInput, r.MembershipType)
	}
	if r.MonthlyFee.IsNegative() {
		return fmt.Errorf("%w: monthly fee must not be negative", ErrInvalidInput)
	}
	return nil
}

// Create registers a new member. The initial next payment date is derived
// from the registration date and the membership type; the member starts
// active.
func (s *Service) Create(ctx context.Context, req *CreateMemberRequest, now time.Time) (*models.Member, error) {
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}

	nextPayment := membership.NextDueDate(now, req.MembershipType)
	m := &models.Member{
		ID:               tool.GenerateUUIDV7(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Document:         req.Document,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		BirthDate:        req.BirthDate,
		RegistrationDate: now,
		MembershipType:   req.MembershipType,
		MonthlyFee:       req.MonthlyFee,
		NextPaymentDate:  &nextPayment,
		IsActive:         true,
		Notes:            req.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).Where("document = ?", m.Document).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check document uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateDocument
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return s.writeLog(tx, m.ID, types.MemberChangeReasonCreate, nil, m, nil)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("member created",
		"member_id", m.ID, "document", m.Document, "membership_type", m.MembershipType)
	return m, nil
}

type UpdateMemberRequest struct {
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Document       string               `json:"document"`
	Email          *string              `json:"email"`
	Phone          *string              `json:"phone"`
	Address        *string              `json:"address"`
	BirthDate      *time.Time           `json:"birth_date"`
	MembershipType types.MembershipType `json:"membership_type"`
	MonthlyFee     decimal.Decimal      `json:"monthly_fee"`
	Notes          *string              `json:"notes"`
}

// Update edits a member's profile fields. Derived dates (last/next payment)
// are payment-driven and are left untouched.
func (s *Service) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*models.Member, error) {
	cr := CreateMemberRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Document:       req.Document,
		MembershipType: req.MembershipType,
		MonthlyFee:     req.MonthlyFee,
	}
	cr.normalize()
	if err := cr.validate(); err != nil {
		return nil, err
	}

	var updated *models.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Member
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to load member: %w", err)
		}
		before := m

		if cr.Document != m.Document {
			var count int64
			if err := tx.Model(&models.Member{}).
				Where("document = ? AND id != ?", cr.Document, id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check document uniqueness: %w", err)
			}
			if count > 0 {
				return ErrDuplicateDocument
			}
		}

		m.FirstName = cr.FirstName
		m.LastName = cr.LastName
		m.Document = cr.Document
		m.Email = req.Email
		m.Phone = req.Phone
		m.Address = req.Address
		m.BirthDate = req.BirthDate
		m.MembershipType = cr.MembershipType
		m.MonthlyFee = cr.MonthlyFee
		m.Notes = req.Notes

		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		updated = &m
		return s.writeLog(tx, m.ID, types.MemberChangeReasonEdit, &before, &m, nil)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Deactivate turns a member inactive. Inactive members drop out of the
// due-soon/overdue lists; a later qualifying payment reactivates them.
func (s *Service) Deactivate(ctx context.Context, id string) (*models.Member, error) {
	var updated *models.Member
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Member
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to load member: %w", err)
		}
		if !m.IsActive {
			updated = &m
			return nil
		}
		before := m
		m.IsActive = false
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to deactivate member: %w", err)
		}
		updated = &m
		return s.writeLog(tx, m.ID, types.MemberChangeReasonDeactivate, &before, &m, nil)
	})
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("member deactivated", "member_id", id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Member{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	logctx.FromCtx(ctx, s.log).Infow("member deleted", "member_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Member, error) {
	var m models.Member
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	return &m, nil
}

type ListMembersRequest struct {
	// Search matches first name, last name, document or email.
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

type ListMembersResponse struct {
	Members    []*models.Member `json:"members"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"total_pages"`
}

func (s *Service) List(ctx context.Context, req *ListMembersRequest) (*ListMembersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	q := s.db.WithContext(ctx).Model(&models.Member{})
	if req.Search != "" {
		like := "%" + req.Search + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR document ILIKE ? OR email ILIKE ?",
			like, like, like, like,
		)
	}
	if req.IsActive != nil {
		q = q.Where("is_active = ?", *req.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	var members []*models.Member
	if err := q.Order("created_at DESC").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersResponse{
		Members:    members,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: (total + int64(req.Limit) - 1) / int64(req.Limit),
	}, nil
}

func (s *Service) writeLog(tx *gorm.DB, memberID string, reason types.MemberChangeReason, before, after *models.Member, extra datatypes.JSONMap) error {
	if extra == nil {
		extra = datatypes.JSONMap{}
	}
	entry := &models.MemberLog{
		ID:       tool.GenerateUUIDV7(),
		MemberID: memberID,
		Reason:   reason,
		Before:   datatypes.NewJSONType(before),
		After:    datatypes.NewJSONType(after),
		Extra:    extra,
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write member log: %w", err)
	}
	return nil
}
