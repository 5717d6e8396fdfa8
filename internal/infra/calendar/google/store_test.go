package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return &Store{loc: loc}
}

func TestStore_MapEvent(t *testing.T) {
	store := newTestStore(t)

	event := &calendar.Event{
		Id:     "evt123",
		Status: "confirmed",
		Start:  &calendar.EventDateTime{DateTime: "2025-11-01T09:00:00-07:00"},
		End:    &calendar.EventDateTime{DateTime: "2025-11-01T13:30:00-07:00"},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{"idempotencyKey": "cs_test_abc"},
		},
	}

	commitment, err := store.mapEvent(event)
	require.NoError(t, err)

	assert.Equal(t, "evt123", commitment.ID)
	assert.Equal(t, domain.StatusActive, commitment.Status)
	assert.Equal(t, "cs_test_abc", commitment.IdempotencyKey)
	assert.Equal(t, 9, commitment.Start.Hour())
	assert.Equal(t, store.loc, commitment.Start.Location())
	assert.Equal(t, 4*time.Hour+30*time.Minute, commitment.End.Sub(commitment.Start))
}

func TestStore_MapEvent_Cancelled(t *testing.T) {
	store := newTestStore(t)

	event := &calendar.Event{
		Id:     "evt456",
		Status: "cancelled",
		Start:  &calendar.EventDateTime{DateTime: "2025-11-01T09:00:00-07:00"},
		End:    &calendar.EventDateTime{DateTime: "2025-11-01T10:00:00-07:00"},
	}

	commitment, err := store.mapEvent(event)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, commitment.Status)
	assert.False(t, commitment.IsActive())
	assert.Empty(t, commitment.IdempotencyKey)
}

func TestStore_MapEvent_AllDay(t *testing.T) {
	store := newTestStore(t)

	event := &calendar.Event{
		Id:     "evt789",
		Status: "confirmed",
		Start:  &calendar.EventDateTime{Date: "2025-11-01"},
		End:    &calendar.EventDateTime{Date: "2025-11-02"},
	}

	commitment, err := store.mapEvent(event)
	require.NoError(t, err)
	assert.Equal(t, 0, commitment.Start.Hour())
	assert.Equal(t, 1, commitment.Start.Day())
	assert.Equal(t, 2, commitment.End.Day())
}

func TestStore_MapEvent_MissingBoundary(t *testing.T) {
	store := newTestStore(t)

	event := &calendar.Event{
		Id:     "evt000",
		Status: "confirmed",
		Start:  &calendar.EventDateTime{DateTime: "2025-11-01T09:00:00-07:00"},
	}

	_, err := store.mapEvent(event)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}
