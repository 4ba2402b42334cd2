package timesync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReferenceAdvanceOneSecond(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ref := NewReference(start)

	got := ref.Advance()

	assert.Equal(t, start.Add(time.Second), got)
	assert.Equal(t, got, ref.Time())
}

func TestReferenceAdvanceMonotonic(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	ref := NewReference(start)

	prev := ref.Time()
	for i := 0; i < 100; i++ {
		next := ref.Advance()
		assert.Equal(t, time.Second, next.Sub(prev))
		prev = next
	}
	assert.Equal(t, start.Add(100*time.Second), ref.Time())
}

func TestReferenceAdvanceRollover(t *testing.T) {
	tests := []struct {
		name   string
		before time.Time
		after  time.Time
	}{
		{
			name:   "minute",
			before: time.Date(2026, 8, 30, 12, 0, 59, 0, time.UTC),
			after:  time.Date(2026, 8, 30, 12, 1, 0, 0, time.UTC),
		},
		{
			name:   "hour",
			before: time.Date(2026, 8, 30, 12, 59, 59, 0, time.UTC),
			after:  time.Date(2026, 8, 30, 13, 0, 0, 0, time.UTC),
		},
		{
			name:   "day",
			before: time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
			after:  time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year",
			before: time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			after:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := NewReference(tt.before)
			assert.Equal(t, tt.after, ref.Advance())
		})
	}
}

func TestReferenceDateString(t *testing.T) {
	ref := NewReference(time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "Sun Aug 30 2026", ref.DateString())

	ref.Advance()
	assert.Equal(t, "Mon Aug 31 2026", ref.DateString())
}

func TestFakeClock(t *testing.T) {
	clock := NewFakeClock()
	epoch := clock.Now()

	clock.Advance(90 * time.Second)
	assert.Equal(t, epoch.Add(90*time.Second), clock.Now())

	exact := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	clock.Set(exact)
	assert.Equal(t, exact, clock.Now())
}
