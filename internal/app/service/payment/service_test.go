package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/types"
)

func TestCreate_RejectsInvalidInput(t *testing.T) {
	s := NewService(nil, zap.NewNop().Sugar())
	now := time.Now()

	tests := []struct {
		name    string
		req     *CreatePaymentRequest
		wantErr error
	}{
		{
			name:    "missing member",
			req:     &CreatePaymentRequest{Amount: decimal.NewFromInt(100), PaymentType: types.PaymentTypeMonthly},
			wantErr: ErrMemberNotFound,
		},
		{
			name:    "zero amount",
			req:     &CreatePaymentRequest{MemberID: "m1", Amount: decimal.Zero, PaymentType: types.PaymentTypeMonthly},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     &CreatePaymentRequest{MemberID: "m1", Amount: decimal.NewFromInt(-50), PaymentType: types.PaymentTypeMonthly},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown payment type",
			req:     &CreatePaymentRequest{MemberID: "m1", Amount: decimal.NewFromInt(50), PaymentType: "TIP"},
			wantErr: ErrInvalidType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), tt.req, now)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyRenewal(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		paidAt   time.Time
		interval types.MembershipType
		wantNext time.Time
	}{
		{
			name:     "monthly renewal",
			paidAt:   date(2024, time.February, 20),
			interval: types.MembershipTypeMonthly,
			wantNext: date(2024, time.March, 20),
		},
		{
			name:     "monthly renewal clamps month end",
			paidAt:   date(2024, time.January, 31),
			interval: types.MembershipTypeMonthly,
			wantNext: date(2024, time.February, 29),
		},
		{
			name:     "annual renewal",
			paidAt:   date(2024, time.February, 29),
			interval: types.MembershipTypeAnnual,
			wantNext: date(2025, time.February, 28),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &models.Member{ID: "m1", IsActive: false}

			applyRenewal(m, tt.paidAt, tt.interval)

			require.NotNil(t, m.LastPaymentDate)
			require.NotNil(t, m.NextPaymentDate)
			assert.Equal(t, tt.paidAt, *m.LastPaymentDate)
			assert.Equal(t, tt.wantNext, *m.NextPaymentDate)
			assert.True(t, m.IsActive, "a qualifying payment reactivates the member")
		})
	}
}

func TestNonQualifyingPaymentSkipsRenewal(t *testing.T) {
	// Mirrors the create path: the renewal only runs when the payment type
	// maps to a membership interval.
	stale := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	for _, pt := range []types.PaymentType{
		types.PaymentTypeRegistration,
		types.PaymentTypePenalty,
		types.PaymentTypeOther,
	} {
		t.Run(string(pt), func(t *testing.T) {
			m := &models.Member{ID: "m1", NextPaymentDate: &stale, IsActive: false}

			if interval, ok := pt.MembershipInterval(); ok {
				applyRenewal(m, time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), interval)
			}

			assert.Nil(t, m.LastPaymentDate)
			assert.Equal(t, stale, *m.NextPaymentDate)
			assert.False(t, m.IsActive)
		})
	}
}

func TestPaymentType_MembershipInterval(t *testing.T) {
	tests := []struct {
		pt         types.PaymentType
		qualifying bool
		interval   types.MembershipType
	}{
		{pt: types.PaymentTypeMonthly, qualifying: true, interval: types.MembershipTypeMonthly},
		{pt: types.PaymentTypeAnnual, qualifying: true, interval: types.MembershipTypeAnnual},
		{pt: types.PaymentTypeRegistration, qualifying: false},
		{pt: types.PaymentTypePenalty, qualifying: false},
		{pt: types.PaymentTypeOther, qualifying: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			interval, ok := tt.pt.MembershipInterval()
			assert.Equal(t, tt.qualifying, ok)
			if tt.qualifying {
				assert.Equal(t, tt.interval, interval)
			}
		})
	}
}
