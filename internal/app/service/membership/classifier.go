package membership

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	// StatusNone means the member has no next payment date (never made a
	// membership payment) and is excluded from due-soon/overdue reporting.
	StatusNone    Status = "NONE"
	StatusCurrent Status = "CURRENT"
	StatusDueSoon Status = "DUE_SOON"
	StatusOverdue Status = "OVERDUE"
)

// DerivedStatus is computed fresh per request from the next payment date and
// the caller-supplied clock; it is never persisted or cached.
type DerivedStatus struct {
	Status Status `json:"status"`
	// DaysUntilDue is negative when overdue.
	DaysUntilDue int `json:"days_until_due"`
	DaysOverdue  int `json:"days_overdue"`
}

// Classify derives a member's payment status from its next payment date.
// The due-soon boundary is inclusive: exactly horizonDays away is DUE_SOON.
// A negative horizon is a programmer error and panics.
func Classify(nextPaymentDate *time.Time, now time.Time, horizonDays int) DerivedStatus {
	if horizonDays < 0 {
		panic(fmt.Sprintf("membership: negative due-soon horizon %d", horizonDays))
	}
	if nextPaymentDate == nil {
		return DerivedStatus{Status: StatusNone}
	}
	days := daysUntil(*nextPaymentDate, now)
	switch {
	case days < 0:
		return DerivedStatus{Status: StatusOverdue, DaysUntilDue: days, DaysOverdue: -days}
	case days <= horizonDays:
		return DerivedStatus{Status: StatusDueSoon, DaysUntilDue: days}
	default:
		return DerivedStatus{Status: StatusCurrent, DaysUntilDue: days}
	}
}

// daysUntil is ceil((due - now) / 24h): a due date 5 days and 1 hour away
// counts as 6 days, one that passed 5 days ago counts as -5.
func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
