package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRestrictionAnalyse(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	restriction := Restriction{Requests: 2, Duration: 10 * time.Second}

	tests := []struct {
		name    string
		history []time.Time
		allowed bool
		wait    time.Duration
	}{
		{"empty history", nil, true, 0},
		{"below the limit", []time.Time{now.Add(-time.Second)}, true, 0},
		{"old requests do not count", []time.Time{now.Add(-20 * time.Second), now.Add(-15 * time.Second)}, true, 0},
		{"limit reached", []time.Time{now.Add(-4 * time.Second), now.Add(-time.Second)}, false, 6 * time.Second},
		{"only recent requests count", []time.Time{now.Add(-30 * time.Second), now.Add(-8 * time.Second), now.Add(-2 * time.Second)}, false, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := restriction.Analyse(tt.history, now)
			assert.Equal(t, tt.allowed, analysis.allowed)
			assert.Equal(t, tt.wait, analysis.wait)
		})
	}
}

func TestStopwatchRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStopwatch(5 * time.Second)
	assert.Equal(t, time.Duration(0), s.Remaining(now))

	s.Start(now)
	assert.Equal(t, 3*time.Second, s.Remaining(now.Add(2*time.Second)))
	assert.Equal(t, time.Duration(0), s.Remaining(now.Add(6*time.Second)))
	assert.False(t, s.Running)
}
