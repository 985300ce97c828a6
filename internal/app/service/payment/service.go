package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitpulse/gymadmin/internal/app/service/membership"
	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/logctx"
	"github.com/fitpulse/gymadmin/pkg/metrics"
	"github.com/fitpulse/gymadmin/pkg/tool"
	"github.com/fitpulse/gymadmin/pkg/types"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidType    = errors.New("invalid payment type")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreatePaymentRequest struct {
	MemberID    string            `json:"member_id"`
	Amount      decimal.Decimal   `json:"amount"`
	PaymentType types.PaymentType `json:"payment_type"`
	// PaymentDate defaults to submission time when omitted.
	PaymentDate *time.Time `json:"payment_date"`
	Description *string    `json:"description"`
}

// Create records a payment. A qualifying payment (MONTHLY or ANNUAL) also
// renews the member inside the same transaction: last payment date moves to
// the payment date, the next payment date advances one membership interval
// from it, and the member is reactivated. The member row is locked so that
// concurrent payments each produce exactly one renewal update.
func (s *Service) Create(ctx context.Context, req *CreatePaymentRequest, now time.Time) (*models.Payment, error) {
	if req.MemberID == "" {
		return nil, ErrMemberNotFound
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !req.PaymentType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, req.PaymentType)
	}

	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	p := &models.Payment{
		ID:          tool.GenerateUUIDV7(),
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		PaymentDate: paymentDate,
		Description: req.Description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", req.MemberID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to load member: %w", err)
		}

		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		interval, qualifying := req.PaymentType.MembershipInterval()
		if !qualifying {
			return nil
		}

		before := m
		applyRenewal(&m, paymentDate, interval)
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to renew member: %w", err)
		}

		entry := &models.MemberLog{
			ID:       tool.GenerateUUIDV7(),
			MemberID: m.ID,
			Reason:   types.MemberChangeReasonPayment,
			Before:   datatypes.NewJSONType(&before),
			After:    datatypes.NewJSONType(&m),
			Extra:    datatypes.JSONMap{"payment_id": p.ID},
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to write member log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(string(p.PaymentType)).Inc()
	if p.PaymentType.Qualifying() {
		metrics.MembershipRenewals.Inc()
	}

	logctx.FromCtx(ctx, s.log).Infow("payment recorded",
		"payment_id", p.ID, "member_id", p.MemberID,
		"payment_type", p.PaymentType, "amount", p.Amount)
	return p, nil
}

// applyRenewal moves a member's membership forward for a qualifying payment:
// the last payment date becomes the payment date, the next payment date
// advances one membership interval from it, and the member is reactivated.
func applyRenewal(m *models.Member, paymentDate time.Time, interval types.MembershipType) {
	next := membership.NextDueDate(paymentDate, interval)
	m.LastPaymentDate = &paymentDate
	m.NextPaymentDate = &next
	m.IsActive = true
}

type ListPaymentsRequest struct {
	MemberID string
	// Search matches the paying member's name or document; ignored when
	// MemberID is set.
	Search string
	Page   int
	Limit  int
}

type ListPaymentsResponse struct {
	Payments   []*models.Payment `json:"payments"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int64             `json:"total_pages"`
}

func (s *Service) List(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	q := s.db.WithContext(ctx).Model(&models.Payment{})
	switch {
	case req.MemberID != "":
		q = q.Where("member_id = ?", req.MemberID)
	case req.Search != "":
		like := "%" + req.Search + "%"
		q = q.Where(
			"member_id IN (?)",
			s.db.Model(&models.Member{}).Select("id").
				Where("first_name ILIKE ? OR last_name ILIKE ? OR document ILIKE ?", like, like, like),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	var payments []*models.Payment
	if err := q.Preload("Member").
		Order("payment_date DESC").
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsResponse{
		Payments:   payments,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: (total + int64(req.Limit) - 1) / int64(req.Limit),
	}, nil
}

// Recent returns the latest payments with their member, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]*models.Payment, error) {
	if limit < 1 {
		limit = 10
	}
	var payments []*models.Payment
	if err := s.db.WithContext(ctx).
		Preload("Member").
		Order("payment_date DESC").
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent payments: %w", err)
	}
	return payments, nil
}
