package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCandidates_HourlyFullDay(t *testing.T) {
	resolver := newTestResolver(t)
	generator := NewGenerator(resolver)

	date := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	got := generator.GenerateCandidates(date, 60, 9, 22)

	// 09:00 .. 21:00 включительно, час закрытия стартом не является
	require.Len(t, got, 13)
	assert.Equal(t, 9, got[0].Hour())
	assert.Equal(t, 21, got[len(got)-1].Hour())

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]), "candidates must be strictly ascending")
	}
}

func TestGenerateCandidates_StepDoesNotDivideWindow(t *testing.T) {
	resolver := newTestResolver(t)
	generator := NewGenerator(resolver)

	date := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	got := generator.GenerateCandidates(date, 50, 10, 12)

	// 10:00, 10:50, 11:40 - следующий шаг (12:30) уже за часом закрытия
	require.Len(t, got, 3)
	assert.Equal(t, 40, got[2].Minute())
	for _, c := range got {
		assert.Equal(t, 1, c.Day(), "candidate must stay on the requested day")
	}
}

func TestGenerateCandidates_ClosedDay(t *testing.T) {
	resolver := newTestResolver(t)
	generator := NewGenerator(resolver)

	date := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, generator.GenerateCandidates(date, 30, 21, 21))
	assert.Empty(t, generator.GenerateCandidates(date, 30, 21, 9))
	assert.Empty(t, generator.GenerateCandidates(date, 0, 9, 21))
}

func TestGenerateCandidates_SpringForwardNoDuplicates(t *testing.T) {
	resolver := newTestResolver(t)
	generator := NewGenerator(resolver)

	// Окно 01:00-04:00 с шагом 30 минут на дне перевода часов вперед.
	// Час 02:xx не существует: 02:00 и 02:30 нормализуются в 03:00 и
	// 03:30, совпадая с собственными слотами 03:00/03:30.
	date := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	got := generator.GenerateCandidates(date, 30, 1, 4)

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].After(got[i-1]), "candidates must be strictly ascending and unique")
	}
	for _, c := range got {
		assert.Contains(t, []int{1, 3}, c.Hour())
		assert.Equal(t, 9, c.Day(), "DST normalization must not leave the day")
	}
}
