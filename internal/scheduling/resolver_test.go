package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	resolver, err := NewResolver("America/Los_Angeles")
	require.NoError(t, err)
	return resolver
}

func TestNewResolver_InvalidZone(t *testing.T) {
	_, err := NewResolver("Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestLocalWallClock_RegularDay(t *testing.T) {
	resolver := newTestResolver(t)

	got := resolver.LocalWallClock(2025, time.November, 1, 10, 30)

	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
	// 1 ноября 2025 Лос-Анджелес еще на PDT (UTC-7)
	assert.Equal(t, time.Date(2025, time.November, 1, 17, 30, 0, 0, time.UTC), got.UTC())
}

func TestLocalWallClock_SpringForward(t *testing.T) {
	resolver := newTestResolver(t)

	// 9 марта 2025: в 02:00 часы переводятся на 03:00, часа 02:xx не существует.
	// Политика: перескакиваем вперед за пропущенный час.
	got := resolver.LocalWallClock(2025, time.March, 9, 2, 30)

	assert.Equal(t, 3, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, time.Date(2025, time.March, 9, 10, 30, 0, 0, time.UTC), got.UTC())
}

func TestLocalWallClock_FallBack(t *testing.T) {
	resolver := newTestResolver(t)

	// 2 ноября 2025: 01:30 существует дважды (PDT и PST).
	// Политика: ранний из двух валидных моментов, т.е. PDT (UTC-7).
	got := resolver.LocalWallClock(2025, time.November, 2, 1, 30)

	assert.Equal(t, 1, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, time.Date(2025, time.November, 2, 8, 30, 0, 0, time.UTC), got.UTC())
}

func TestCalendarDay_Lengths(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name string
		day  time.Time
		want time.Duration
	}{
		{
			name: "regular day",
			day:  resolver.LocalWallClock(2025, time.November, 1, 12, 0),
			want: 24 * time.Hour,
		},
		{
			name: "spring forward day is 23 hours",
			day:  resolver.LocalWallClock(2025, time.March, 9, 12, 0),
			want: 23 * time.Hour,
		},
		{
			name: "fall back day is 25 hours",
			day:  resolver.LocalWallClock(2025, time.November, 2, 12, 0),
			want: 25 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := resolver.CalendarDay(tt.day)
			assert.Equal(t, tt.want, window.Duration())
			assert.True(t, window.Contains(tt.day))
		})
	}
}
