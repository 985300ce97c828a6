package membership

import (
	"time"

	"github.com/fitpulse/gymadmin/pkg/types"
)

// NextDueDate returns the renewal date for a membership paid on base:
// one calendar month later for MONTHLY, one calendar year later for ANNUAL.
// The day of month is preserved; when the target month is shorter the date
// clamps to its last day (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap
// year; Feb 29 + 1 year = Feb 28).
func NextDueDate(base time.Time, membershipType types.MembershipType) time.Time {
	if membershipType == types.MembershipTypeAnnual {
		return addMonthsClamped(base, 12)
	}
	return addMonthsClamped(base, 1)
}

// addMonthsClamped advances t by the given number of months without the
// overflow normalization of time.AddDate (which turns Jan 31 + 1 month into
// Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
