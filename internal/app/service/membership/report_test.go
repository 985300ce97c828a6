package membership

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitpulse/gymadmin/internal/models"
	"github.com/fitpulse/gymadmin/pkg/types"
)

func member(id string, active bool, next *time.Time) *models.Member {
	return &models.Member{
		ID:               id,
		FirstName:        "First" + id,
		LastName:         "Last" + id,
		Document:         "doc-" + id,
		MembershipType:   types.MembershipTypeMonthly,
		MonthlyFee:       decimal.NewFromInt(50000),
		RegistrationDate: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		IsActive:         active,
		NextPaymentDate:  next,
	}
}

func payment(amount int64, pt types.PaymentType, at time.Time) *models.Payment {
	return &models.Payment{
		Amount:      decimal.NewFromInt(amount),
		PaymentType: pt,
		PaymentDate: at,
	}
}

func reportWindows(now time.Time) ReportInput {
	return ReportInput{
		PeriodStart:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:          time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
		PriorPeriodStart:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		PriorPeriodEnd:     time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC),
		Now:                now,
		DueSoonHorizonDays: 7,
		AlertListLimit:     10,
	}
}

func TestBuildReport_Counts(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)

	far := now.AddDate(0, 2, 0)
	in.Members = []*models.Member{
		member("1", true, &far),
		member("2", true, &far),
		member("3", false, &far),
	}
	in.Members[0].RegistrationDate = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	in.Payments = []*models.Payment{
		payment(50000, types.PaymentTypeMonthly, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		payment(30000, types.PaymentTypeRegistration, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)),
		payment(40000, types.PaymentTypeMonthly, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)),
		// outside both windows
		payment(99999, types.PaymentTypeMonthly, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}

	r, err := BuildReport(in)
	require.NoError(t, err)

	assert.Equal(t, int64(3), r.TotalMembers)
	assert.Equal(t, int64(2), r.ActiveMembers)
	assert.Equal(t, int64(1), r.InactiveMembers)
	assert.Equal(t, int64(1), r.NewMembersThisPeriod)
	assert.Equal(t, int64(2), r.PaymentsThisPeriod)
	assert.Equal(t, int64(1), r.PaymentsPriorPeriod)
	assert.True(t, r.RevenueThisPeriod.Equal(decimal.NewFromInt(80000)), "revenue %s", r.RevenueThisPeriod)
	assert.True(t, r.RevenuePriorPeriod.Equal(decimal.NewFromInt(40000)))
	// (2-1)/1*100 and (80000-40000)/40000*100
	assert.InDelta(t, 100.0, r.PaymentsGrowthPct, 0.001)
	assert.InDelta(t, 100.0, r.RevenueGrowthPct, 0.001)
	assert.True(t, r.AveragePayment.Equal(decimal.NewFromInt(40000)))
	// 2 of 3 active
	assert.Equal(t, 67, r.MembershipRetentionPct)
}

func TestBuildReport_ZeroPriorPeriod(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)
	for i := 0; i < 5; i++ {
		in.Payments = append(in.Payments,
			payment(10000, types.PaymentTypeMonthly, time.Date(2024, time.March, 5+i, 0, 0, 0, 0, time.UTC)))
	}

	r, err := BuildReport(in)
	require.NoError(t, err)

	assert.Equal(t, int64(5), r.PaymentsThisPeriod)
	assert.Equal(t, int64(0), r.PaymentsPriorPeriod)
	assert.Equal(t, 0.0, r.PaymentsGrowthPct)
	assert.Equal(t, 0.0, r.RevenueGrowthPct)
}

func TestBuildReport_EmptyInput(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	r, err := BuildReport(reportWindows(now))
	require.NoError(t, err)

	assert.Equal(t, int64(0), r.TotalMembers)
	assert.Equal(t, 0, r.MembershipRetentionPct)
	assert.True(t, r.AveragePayment.IsZero())
	assert.Empty(t, r.MembersDueSoon)
	assert.Empty(t, r.MembersOverdue)
}

func TestBuildReport_OverdueOrdering(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)

	over := func(days int) *time.Time {
		v := now.AddDate(0, 0, -days)
		return &v
	}
	in.Members = []*models.Member{
		member("a", true, over(1)),
		member("b", true, over(10)),
		member("c", true, over(5)),
		// inactive members stay out of the list no matter how late
		member("d", false, over(30)),
	}

	r, err := BuildReport(in)
	require.NoError(t, err)

	require.Len(t, r.MembersOverdue, 3)
	assert.Equal(t, "b", r.MembersOverdue[0].ID)
	assert.Equal(t, "c", r.MembersOverdue[1].ID)
	assert.Equal(t, "a", r.MembersOverdue[2].ID)
	assert.Equal(t, 10, r.MembersOverdue[0].DaysOverdue)
}

func TestBuildReport_DueSoonListSortedAndCapped(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)
	in.AlertListLimit = 3

	due := func(days int) *time.Time {
		v := now.AddDate(0, 0, days)
		return &v
	}
	for i, d := range []int{6, 2, 4, 1, 5} {
		in.Members = append(in.Members, member(string(rune('a'+i)), true, due(d)))
	}

	r, err := BuildReport(in)
	require.NoError(t, err)

	require.Len(t, r.MembersDueSoon, 3)
	assert.Equal(t, "d", r.MembersDueSoon[0].ID) // due in 1 day
	assert.Equal(t, "b", r.MembersDueSoon[1].ID) // 2 days
	assert.Equal(t, "c", r.MembersDueSoon[2].ID) // 4 days
}

func TestBuildReport_MembersWithoutDueDateExcluded(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)
	in.Members = []*models.Member{member("x", true, nil)}

	r, err := BuildReport(in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), r.TotalMembers)
	assert.Empty(t, r.MembersDueSoon)
	assert.Empty(t, r.MembersOverdue)
}

func TestBuildReport_PaymentsByType(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)
	mar := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	in.Payments = []*models.Payment{
		payment(50000, types.PaymentTypeMonthly, mar(3)),
		payment(50000, types.PaymentTypeMonthly, mar(9)),
		payment(20000, types.PaymentTypeRegistration, mar(3)),
		payment(5000, types.PaymentTypePenalty, mar(12)),
		// prior period payments are not grouped
		payment(50000, types.PaymentTypeMonthly, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)),
	}

	r, err := BuildReport(in)
	require.NoError(t, err)

	require.Len(t, r.PaymentsByType, 3)
	assert.Equal(t, int64(2), r.PaymentsByType[types.PaymentTypeMonthly].Count)
	assert.True(t, r.PaymentsByType[types.PaymentTypeMonthly].Total.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, int64(1), r.PaymentsByType[types.PaymentTypePenalty].Count)
}

func TestBuildReport_InvertedWindow(t *testing.T) {
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	in := reportWindows(now)
	in.PeriodStart, in.PeriodEnd = in.PeriodEnd, in.PeriodStart

	_, err := BuildReport(in)
	require.Error(t, err)
}
