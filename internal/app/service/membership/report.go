package membership

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/types"
)

// ReportInput carries already-fetched data plus the reporting windows and
// clock. BuildReport never touches storage or the wall clock, so reports are
// deterministic for a given input.
type ReportInput struct {
	Members  []*models.Member
	Payments []*models.Payment

	PeriodStart      time.Time
	PeriodEnd        time.Time
	PriorPeriodStart time.Time
	PriorPeriodEnd   time.Time

	Now                time.Time
	DueSoonHorizonDays int
	// AlertListLimit caps MembersDueSoon and MembersOverdue. Zero or
	// negative means no cap.
	AlertListLimit int
}

// MemberAlert is a member flagged for the due-soon or overdue lists.
type MemberAlert struct {
	ID              string               `json:"id"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	Document        string               `json:"document"`
	MembershipType  types.MembershipType `json:"membership_type"`
	MonthlyFee      decimal.Decimal      `json:"monthly_fee"`
	NextPaymentDate time.Time            `json:"next_payment_date"`
	DaysUntilDue    int                  `json:"days_until_due"`
	DaysOverdue     int                  `json:"days_overdue"`
}

type PaymentTypeSummary struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type Report struct {
	TotalMembers         int64 `json:"total_members"`
	ActiveMembers        int64 `json:"active_members"`
	InactiveMembers      int64 `json:"inactive_members"`
	NewMembersThisPeriod int64 `json:"new_members_this_period"`

	PaymentsThisPeriod  int64           `json:"payments_this_period"`
	PaymentsPriorPeriod int64           `json:"payments_prior_period"`
	RevenueThisPeriod   decimal.Decimal `json:"revenue_this_period"`
	RevenuePriorPeriod  decimal.Decimal `json:"revenue_prior_period"`

	// Growth percentages are period-over-period, rounded to 2 decimals and
	// defined as 0 when the prior period is zero.
	PaymentsGrowthPct float64 `json:"payments_growth_pct"`
	RevenueGrowthPct  float64 `json:"revenue_growth_pct"`

	// AveragePayment is rounded to the nearest whole currency unit.
	AveragePayment         decimal.Decimal `json:"average_payment"`
	MembershipRetentionPct int             `json:"membership_retention_pct"`

	MembersDueSoon []*MemberAlert `json:"members_due_soon"`
	MembersOverdue []*MemberAlert `json:"members_overdue"`

	PaymentsByType map[types.PaymentType]PaymentTypeSummary `json:"payments_by_type"`
}

// BuildReport folds the member and payment collections into dashboard
// statistics and the due-soon/overdue alert lists. Inactive members never
// appear in the alert lists. The only error is an inverted time window.
func BuildReport(in ReportInput) (*Report, error) {
	if in.PeriodEnd.Before(in.PeriodStart) {
		return nil, fmt.Errorf("period end %s before start %s", in.PeriodEnd, in.PeriodStart)
	}
	if in.PriorPeriodEnd.Before(in.PriorPeriodStart) {
		return nil, fmt.Errorf("prior period end %s before start %s", in.PriorPeriodEnd, in.PriorPeriodStart)
	}

	r := &Report{
		RevenueThisPeriod:  decimal.Zero,
		RevenuePriorPeriod: decimal.Zero,
		AveragePayment:     decimal.Zero,
		MembersDueSoon:     []*MemberAlert{},
		MembersOverdue:     []*MemberAlert{},
		PaymentsByType:     map[types.PaymentType]PaymentTypeSummary{},
	}

	r.TotalMembers = int64(len(in.Members))
	for _, m := range in.Members {
		if m.IsActive {
			r.ActiveMembers++
		}
		if within(m.RegistrationDate, in.PeriodStart, in.PeriodEnd) {
			r.NewMembersThisPeriod++
		}
	}
	r.InactiveMembers = r.TotalMembers - r.ActiveMembers
	r.MembersDueSoon, r.MembersOverdue = AlertLists(in.Members, in.Now, in.DueSoonHorizonDays, in.AlertListLimit)

	for _, p := range in.Payments {
		switch {
		case within(p.PaymentDate, in.PeriodStart, in.PeriodEnd):
			r.PaymentsThisPeriod++
			r.RevenueThisPeriod = r.RevenueThisPeriod.Add(p.Amount)
			sum := r.PaymentsByType[p.PaymentType]
			sum.Count++
			sum.Total = sum.Total.Add(p.Amount)
			r.PaymentsByType[p.PaymentType] = sum
		case within(p.PaymentDate, in.PriorPeriodStart, in.PriorPeriodEnd):
			r.PaymentsPriorPeriod++
			r.RevenuePriorPeriod = r.RevenuePriorPeriod.Add(p.Amount)
		}
	}

	r.PaymentsGrowthPct = growthPct(decimal.NewFromInt(r.PaymentsThisPeriod), decimal.NewFromInt(r.PaymentsPriorPeriod))
	r.RevenueGrowthPct = growthPct(r.RevenueThisPeriod, r.RevenuePriorPeriod)
	if r.PaymentsThisPeriod > 0 {
		r.AveragePayment = r.RevenueThisPeriod.Div(decimal.NewFromInt(r.PaymentsThisPeriod)).Round(0)
	}
	if r.TotalMembers > 0 {
		r.MembershipRetentionPct = int(math.Round(float64(r.ActiveMembers) / float64(r.TotalMembers) * 100))
	}

	return r, nil
}

// AlertLists classifies members against now and materializes the due-soon
// and overdue lists, both sorted ascending by next payment date (for overdue
// members that puts the longest overdue first) and capped at limit when
// limit is positive. Inactive members and members without a next payment
// date are excluded. Shared by the dashboard and the alerts view.
func AlertLists(members []*models.Member, now time.Time, horizonDays, limit int) (dueSoon, overdue []*MemberAlert) {
	dueSoon = []*MemberAlert{}
	overdue = []*MemberAlert{}
	for _, m := range members {
		if !m.IsActive {
			// An inactive member is assumed already handled or churned.
			continue
		}
		status := Classify(m.NextPaymentDate, now, horizonDays)
		switch status.Status {
		case StatusDueSoon:
			dueSoon = append(dueSoon, toAlert(m, status))
		case StatusOverdue:
			overdue = append(overdue, toAlert(m, status))
		}
	}

	byDueDate := func(a, b *MemberAlert) int {
		return a.NextPaymentDate.Compare(b.NextPaymentDate)
	}
	slices.SortFunc(dueSoon, byDueDate)
	slices.SortFunc(overdue, byDueDate)
	if limit > 0 {
		dueSoon = lo.Subset(dueSoon, 0, uint(limit))
		overdue = lo.Subset(overdue, 0, uint(limit))
	}
	return dueSoon, overdue
}

func toAlert(m *models.Member, status DerivedStatus) *MemberAlert {
	return &MemberAlert{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Document:        m.Document,
		MembershipType:  m.MembershipType,
		MonthlyFee:      m.MonthlyFee,
		NextPaymentDate: *m.NextPaymentDate,
		DaysUntilDue:    status.DaysUntilDue,
		DaysOverdue:     status.DaysOverdue,
	}
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func growthPct(current, prior decimal.Decimal) float64 {
	if prior.IsZero() {
		return 0
	}
	pct, _ := current.Sub(prior).
		Div(prior).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return pct
}
