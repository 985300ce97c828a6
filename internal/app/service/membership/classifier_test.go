package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	due := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name         string
		next         *time.Time
		horizon      int
		wantStatus   Status
		wantDaysDue  int
		wantDaysOver int
	}{
		{name: "no next payment date", next: nil, horizon: 7, wantStatus: StatusNone},
		{name: "due in 3 days", next: due(3 * day), horizon: 7, wantStatus: StatusDueSoon, wantDaysDue: 3},
		{name: "due in 8 days is current", next: due(8 * day), horizon: 7, wantStatus: StatusCurrent, wantDaysDue: 8},
		{name: "boundary is inclusive", next: due(7 * day), horizon: 7, wantStatus: StatusDueSoon, wantDaysDue: 7},
		{name: "due today", next: due(0), horizon: 7, wantStatus: StatusDueSoon, wantDaysDue: 0},
		{name: "overdue 5 days", next: due(-5 * day), horizon: 7, wantStatus: StatusOverdue, wantDaysDue: -5, wantDaysOver: 5},
		{name: "partial day rounds up", next: due(5*day + time.Hour), horizon: 7, wantStatus: StatusDueSoon, wantDaysDue: 6},
		{name: "zero horizon flags only today", next: due(1 * day), horizon: 0, wantStatus: StatusCurrent, wantDaysDue: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.next, now, tt.horizon)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantDaysDue, got.DaysUntilDue)
			assert.Equal(t, tt.wantDaysOver, got.DaysOverdue)
		})
	}
}

func TestClassify_OverdueScenario(t *testing.T) {
	// Member renewed on 2024-02-20 (MONTHLY): due 2024-03-20, checked on
	// 2024-03-25 they are 5 days overdue.
	now := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	next := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	got := Classify(&next, now, 7)
	require.Equal(t, StatusOverdue, got.Status)
	assert.Equal(t, 5, got.DaysOverdue)
	assert.Equal(t, -5, got.DaysUntilDue)
}

func TestClassify_NegativeHorizonPanics(t *testing.T) {
	now := time.Now()
	assert.Panics(t, func() {
		Classify(&now, now, -1)
	})
}
