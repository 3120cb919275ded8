package attendance

import (
	"testing"
	"time"
)

func TestBreakExceedsCap(t *testing.T) {
	start := time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC)

	if BreakExceedsCap(start, start.Add(30*time.Minute)) {
		t.Error("a 30 minute break should be within the cap")
	}
	if BreakExceedsCap(start, start.Add(60*time.Minute)) {
		t.Error("a break of exactly 60 minutes should be within the cap")
	}
	if !BreakExceedsCap(start, start.Add(60*time.Minute+time.Nanosecond)) {
		t.Error("anything past 60 minutes should exceed the cap")
	}
	if !BreakExceedsCap(start, start.Add(61*time.Minute)) {
		t.Error("a 61 minute break should exceed the cap")
	}
}

func TestWorkMinutes(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}
	ptr := func(tm time.Time) *time.Time { return &tm }

	tests := []struct {
		name       string
		clockIn    time.Time
		clockOut   time.Time
		breakStart *time.Time
		breakEnd   *time.Time
		want       int
	}{
		{
			name:       "full day with half hour break",
			clockIn:    at(9, 0),
			clockOut:   at(18, 0),
			breakStart: ptr(at(13, 0)),
			breakEnd:   ptr(at(13, 30)),
			want:       480,
		},
		{
			name:     "no break",
			clockIn:  at(9, 0),
			clockOut: at(17, 0),
			want:     480,
		},
		{
			name:       "break started but never ended is ignored",
			clockIn:    at(9, 0),
			clockOut:   at(17, 0),
			breakStart: ptr(at(13, 0)),
			want:       480,
		},
		{
			name:     "partial minutes truncate down",
			clockIn:  at(9, 0),
			clockOut: at(9, 59).Add(59 * time.Second),
			want:     59,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkMinutes(tt.clockIn, tt.clockOut, tt.breakStart, tt.breakEnd)
			if got != tt.want {
				t.Errorf("WorkMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}
