//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStart   = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	testCreated = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
)

func TestNewSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		duration := 90 * time.Minute
		meetingURL := "https://meet.example.com/session"

		actual, err := slot.NewSlot(testStart, 5, &duration, &meetingURL, testCreated)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, testStart, actual.StartsAt())
		require.NotNil(t, actual.EndsAt())
		assert.Equal(t, testStart.Add(90*time.Minute), *actual.EndsAt())
		assert.Equal(t, 5, actual.Capacity())
		assert.Equal(t, 0, actual.BookedCount())
		assert.Equal(t, slot.StatusOpen, actual.Status())
		require.NotNil(t, actual.MeetingURL())
		assert.Equal(t, meetingURL, *actual.MeetingURL())
		assert.Equal(t, testCreated, actual.CreatedAt())
	})

	t.Run("no duration leaves end time unset", func(t *testing.T) {
		actual, err := slot.NewSlot(testStart, 3, nil, nil, testCreated)
		require.NoError(t, err)
		assert.Nil(t, actual.EndsAt())
	})

	t.Run("zero start time", func(t *testing.T) {
		_, err := slot.NewSlot(time.Time{}, 5, nil, nil, testCreated)
		assert.ErrorIs(t, err, slot.ErrZeroStartTime)
	})

	t.Run("capacity validation", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			capacity int
			errIs    error
		}{
			{name: "minimum valid capacity", capacity: 1},
			{name: "zero capacity", capacity: 0, errIs: slot.ErrInvalidCapacity},
			{name: "negative capacity", capacity: -1, errIs: slot.ErrInvalidCapacity},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := slot.NewSlot(testStart, tc.capacity, nil, nil, testCreated)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("duration validation", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			duration time.Duration
			errIs    error
		}{
			{name: "minimum valid duration", duration: 30 * time.Minute},
			{name: "maximum valid duration", duration: 10 * time.Hour},
			{name: "mid-range on the half hour", duration: 150 * time.Minute},
			{name: "below minimum", duration: 15 * time.Minute, errIs: slot.ErrInvalidDuration},
			{name: "above maximum", duration: 10*time.Hour + 30*time.Minute, errIs: slot.ErrInvalidDuration},
			{name: "not on a 30-minute step", duration: 45 * time.Minute, errIs: slot.ErrInvalidDuration},
			{name: "zero duration", duration: 0, errIs: slot.ErrInvalidDuration},
			{name: "negative duration", duration: -time.Hour, errIs: slot.ErrInvalidDuration},
		} {
			t.Run(tc.name, func(t *testing.T) {
				d := tc.duration
				_, err := slot.NewSlot(testStart, 5, &d, nil, testCreated)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestSlotCapacityChanges(t *testing.T) {
	reconstruct := func(capacity, booked int) *slot.Slot {
		return slot.ReconstructSlot(
			uuid.New(), testStart, nil, capacity, booked,
			slot.StatusOpen, nil, testStart.Add(-24*time.Hour),
		)
	}

	t.Run("raise capacity", func(t *testing.T) {
		s := reconstruct(5, 5)
		require.NoError(t, s.ChangeCapacity(8))
		assert.Equal(t, 8, s.Capacity())
		assert.Equal(t, 3, s.Remaining())
	})

	t.Run("lower capacity down to booked count", func(t *testing.T) {
		s := reconstruct(5, 3)
		require.NoError(t, s.ChangeCapacity(3))
		assert.Equal(t, 0, s.Remaining())
		assert.True(t, s.IsFull())
	})

	t.Run("lower capacity below booked count", func(t *testing.T) {
		s := reconstruct(5, 4)
		err := s.ChangeCapacity(3)
		assert.ErrorIs(t, err, slot.ErrCapacityBelowBooked)
		assert.Equal(t, 5, s.Capacity())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		s := reconstruct(5, 0)
		assert.ErrorIs(t, s.ChangeCapacity(0), slot.ErrInvalidCapacity)
	})
}

func TestSlotStatusAndDuration(t *testing.T) {
	t.Run("close and reopen", func(t *testing.T) {
		s, err := slot.NewSlot(testStart, 5, nil, nil, testCreated)
		require.NoError(t, err)
		assert.True(t, s.IsOpen())

		require.NoError(t, s.ChangeStatus(slot.StatusClosed))
		assert.False(t, s.IsOpen())

		require.NoError(t, s.ChangeStatus(slot.StatusOpen))
		assert.True(t, s.IsOpen())
	})

	t.Run("change duration recomputes end time", func(t *testing.T) {
		d := time.Hour
		s, err := slot.NewSlot(testStart, 5, &d, nil, testCreated)
		require.NoError(t, err)

		require.NoError(t, s.ChangeDuration(2*time.Hour))
		require.NotNil(t, s.EndsAt())
		assert.Equal(t, testStart.Add(2*time.Hour), *s.EndsAt())
	})

	t.Run("change duration rejects off-step values", func(t *testing.T) {
		s, err := slot.NewSlot(testStart, 5, nil, nil, testCreated)
		require.NoError(t, err)
		assert.ErrorIs(t, s.ChangeDuration(40*time.Minute), slot.ErrInvalidDuration)
	})
}

func TestParseStatus(t *testing.T) {
	for _, tc := range []struct {
		input   string
		want    slot.Status
		wantErr bool
	}{
		{input: "open", want: slot.StatusOpen},
		{input: "closed", want: slot.StatusClosed},
		{input: "OPEN", wantErr: true},
		{input: "", wantErr: true},
		{input: "cancelled", wantErr: true},
	} {
		t.Run("input "+tc.input, func(t *testing.T) {
			got, err := slot.ParseStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, slot.ErrInvalidStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
