package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitpulse/gymadmin/internal/app/service/membership"
	"github.com/fitpulse/gymadmin/internal/app/service/payment"
	"github.com/fitpulse/gymadmin/internal/models"
	cfgpkg "github.com/fitpulse/gymadmin/pkg/config"
	"github.com/fitpulse/gymadmin/pkg/metrics"
	"github.com/fitpulse/gymadmin/pkg/types"
)

// Service assembles the dashboard and alert views. All classification goes
// through the membership package with an explicit clock, so the handlers
// decide what "now" is exactly once per request.
type Service struct {
	db       *gorm.DB
	log      *zap.SugaredLogger
	cfg      *cfgpkg.Config
	payments *payment.Service
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *cfgpkg.Config, payments *payment.Service) *Service {
	return &Service{db: db, log: log, cfg: cfg, payments: payments}
}

type RecentPaymentMember struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Document  string `json:"document"`
}

type RecentPayment struct {
	ID          string               `json:"id"`
	Amount      decimal.Decimal      `json:"amount"`
	PaymentType types.PaymentType    `json:"payment_type"`
	PaymentDate time.Time            `json:"payment_date"`
	Member      *RecentPaymentMember `json:"member,omitempty"`
}

// Dashboard is the extended aggregation shape: period statistics plus the
// alert lists and the latest payments.
type Dashboard struct {
	membership.Report
	RecentPayments []*RecentPayment `json:"recent_payments"`
}

// Get builds the dashboard for the calendar month containing now, compared
// against the month before it.
func (s *Service) Get(ctx context.Context, now time.Time) (*Dashboard, error) {
	periodStart, periodEnd := monthWindow(now)
	priorStart, priorEnd := monthWindow(periodStart.AddDate(0, 0, -1))

	members, err := s.allMembers(ctx)
	if err != nil {
		return nil, err
	}

	var payments []*models.Payment
	if err := s.db.WithContext(ctx).
		Where("payment_date >= ? AND payment_date <= ?", priorStart, periodEnd).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	report, err := membership.BuildReport(membership.ReportInput{
		Members:            members,
		Payments:           payments,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
		PriorPeriodStart:   priorStart,
		PriorPeriodEnd:     priorEnd,
		Now:                now,
		DueSoonHorizonDays: s.cfg.Dashboard.DueSoonHorizonDays,
		AlertListLimit:     s.cfg.Dashboard.AlertListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	recent, err := s.payments.Recent(ctx, s.cfg.Dashboard.AlertListLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Report:         *report,
		RecentPayments: toRecentPayments(recent),
	}, nil
}

type Alerts struct {
	DueSoon []*membership.MemberAlert `json:"due_soon"`
	Overdue []*membership.MemberAlert `json:"overdue"`
}

// GetAlerts returns the due-soon and overdue member lists using the same
// classifier as the dashboard.
func (s *Service) GetAlerts(ctx context.Context, now time.Time) (*Alerts, error) {
	members, err := s.allMembers(ctx)
	if err != nil {
		return nil, err
	}
	dueSoon, overdue := membership.AlertLists(members, now,
		s.cfg.Dashboard.DueSoonHorizonDays, s.cfg.Dashboard.AlertListLimit)

	// Gauges track the full population, not the capped lists.
	var nDueSoon, nOverdue int
	for _, m := range members {
		if !m.IsActive {
			continue
		}
		switch membership.Classify(m.NextPaymentDate, now, s.cfg.Dashboard.DueSoonHorizonDays).Status {
		case membership.StatusDueSoon:
			nDueSoon++
		case membership.StatusOverdue:
			nOverdue++
		}
	}
	metrics.MembersDueSoon.Set(float64(nDueSoon))
	metrics.MembersOverdue.Set(float64(nOverdue))

	return &Alerts{DueSoon: dueSoon, Overdue: overdue}, nil
}

func (s *Service) allMembers(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	if err := s.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	return members, nil
}

func toRecentPayments(payments []*models.Payment) []*RecentPayment {
	out := make([]*RecentPayment, 0, len(payments))
	for _, p := range payments {
		rp := &RecentPayment{
			ID:          p.ID,
			Amount:      p.Amount,
			PaymentType: p.PaymentType,
			PaymentDate: p.PaymentDate,
		}
		if p.Member != nil {
			rp.Member = &RecentPaymentMember{
				ID:        p.Member.ID,
				FirstName: p.Member.FirstName,
				LastName:  p.Member.LastName,
				Document:  p.Member.Document,
			}
		}
		out = append(out, rp)
	}
	return out
}

// monthWindow returns the first and last instant of the calendar month
// containing t, in t's location.
func monthWindow(t time.Time) (start, end time.Time) {
	year, month, _ := t.Date()
	start = time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
