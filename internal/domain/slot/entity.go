package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrCapacityBelowBooked = errors.New("capacity cannot fall below booked count")
	ErrInvalidDuration     = errors.New("duration must be a half-hour multiple between 30m and 10h")
	ErrInvalidStatus       = errors.New("invalid slot status")
	ErrZeroStartTime       = errors.New("start time is required")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

const (
	DurationStep = 30 * time.Minute
	MinDuration  = 30 * time.Minute
	MaxDuration  = 10 * time.Hour
)

// ValidateDuration enforces the slot length rule: a positive multiple of the
// half-hour step within [30m, 10h].
func ValidateDuration(d time.Duration) error {
	if d < MinDuration || d > MaxDuration || d%DurationStep != 0 {
		return ErrInvalidDuration
	}
	return nil
}

type Slot struct {
	id          uuid.UUID
	startsAt    time.Time
	endsAt      *time.Time
	capacity    int
	bookedCount int
	status      Status
	meetingURL  *string
	createdAt   time.Time
}

func NewSlot(startsAt time.Time, capacity int, duration *time.Duration, meetingURL *string, now time.Time) (*Slot, error) {
	if startsAt.IsZero() {
		return nil, ErrZeroStartTime
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	var endsAt *time.Time
	if duration != nil {
		if err := ValidateDuration(*duration); err != nil {
			return nil, err
		}
		end := startsAt.Add(*duration)
		endsAt = &end
	}

	return &Slot{
		id:          uuid.New(),
		startsAt:    startsAt,
		endsAt:      endsAt,
		capacity:    capacity,
		bookedCount: 0,
		status:      StatusOpen,
		meetingURL:  meetingURL,
		createdAt:   now,
	}, nil
}

func ReconstructSlot(
	id uuid.UUID,
	startsAt time.Time,
	endsAt *time.Time,
	capacity, bookedCount int,
	status Status,
	meetingURL *string,
	createdAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		startsAt:    startsAt,
		endsAt:      endsAt,
		capacity:    capacity,
		bookedCount: bookedCount,
		status:      status,
		meetingURL:  meetingURL,
		createdAt:   createdAt,
	}
}

func (s *Slot) Remaining() int {
	remaining := s.capacity - s.bookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Slot) IsFull() bool {
	return s.bookedCount >= s.capacity
}

func (s *Slot) IsOpen() bool {
	return s.status == StatusOpen
}

// ChangeCapacity rejects any decrease that would strand existing bookings.
func (s *Slot) ChangeCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if capacity < s.bookedCount {
		return ErrCapacityBelowBooked
	}
	s.capacity = capacity
	return nil
}

// ChangeDuration recomputes the end time from the fixed start time.
func (s *Slot) ChangeDuration(d time.Duration) error {
	if err := ValidateDuration(d); err != nil {
		return err
	}
	end := s.startsAt.Add(d)
	s.endsAt = &end
	return nil
}

func (s *Slot) ChangeStatus(status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Slot) SetMeetingURL(u *string) {
	s.meetingURL = u
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) StartsAt() time.Time  { return s.startsAt }
func (s *Slot) EndsAt() *time.Time   { return s.endsAt }
func (s *Slot) Capacity() int        { return s.capacity }
func (s *Slot) BookedCount() int     { return s.bookedCount }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) MeetingURL() *string  { return s.meetingURL }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
