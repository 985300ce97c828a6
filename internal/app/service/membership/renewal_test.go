package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitpulse/gymadmin/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate_Monthly(t *testing.T) {
	tests := []struct {
		name string
		base time.Time
		want time.Time
	}{
		{name: "mid month", base: date(2024, time.January, 15), want: date(2024, time.February, 15)},
		{name: "jan 31 clamps to feb 29 in leap year", base: date(2024, time.January, 31), want: date(2024, time.February, 29)},
		{name: "jan 31 clamps to feb 28 in non-leap year", base: date(2023, time.January, 31), want: date(2023, time.February, 28)},
		{name: "mar 31 clamps to apr 30", base: date(2024, time.March, 31), want: date(2024, time.April, 30)},
		{name: "dec rolls into next year", base: date(2024, time.December, 15), want: date(2025, time.January, 15)},
		{name: "dec 31 to jan 31", base: date(2024, time.December, 31), want: date(2025, time.January, 31)},
		{name: "feb 29 to mar 29", base: date(2024, time.February, 29), want: date(2024, time.March, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDueDate(tt.base, types.MembershipTypeMonthly))
		})
	}
}

func TestNextDueDate_Annual(t *testing.T) {
	tests := []struct {
		name string
		base time.Time
		want time.Time
	}{
		{name: "plain year", base: date(2024, time.January, 15), want: date(2025, time.January, 15)},
		{name: "feb 29 clamps to feb 28 in non-leap target", base: date(2024, time.February, 29), want: date(2025, time.February, 28)},
		{name: "dec 31", base: date(2023, time.December, 31), want: date(2024, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDueDate(tt.base, types.MembershipTypeAnnual))
		})
	}
}

func TestNextDueDate_PreservesClock(t *testing.T) {
	base := time.Date(2024, time.May, 10, 14, 30, 45, 0, time.UTC)
	got := NextDueDate(base, types.MembershipTypeMonthly)
	assert.Equal(t, time.Date(2024, time.June, 10, 14, 30, 45, 0, time.UTC), got)
}
