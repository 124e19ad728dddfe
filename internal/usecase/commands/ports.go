package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"

	"github.com/google/uuid"
)

// BookingRepository is the write side for bookings. Reserve and Cancel are
// transactional: the capacity check and the counter mutation commit as one
// unit, or not at all.
type BookingRepository interface {
	// Reserve inserts the booking and increments the slot's booked_count while
	// holding a row lock on the slot. Business rejections surface as the errs
	// sentinels (ErrSlotNotFound, ErrSlotClosed, ErrSlotFull,
	// ErrDuplicateBooking).
	Reserve(ctx context.Context, b *booking.Booking) error
	// Cancel removes the booking and decrements the owning slot's
	// booked_count, floored at zero. Returns the removed booking's external
	// calendar event id, if any.
	Cancel(ctx context.Context, id uuid.UUID) (calendarEventID *string, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateCalendar(ctx context.Context, id uuid.UUID, status booking.CalendarStatus, eventID *string) error
}

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	// Mutate loads the slot under a row lock, applies fn and persists the
	// result inside the same transaction. fn errors abort the update.
	Mutate(ctx context.Context, id uuid.UUID, fn func(*slot.Slot) error) (*slot.Slot, error)
	// Delete refuses to remove a slot that still has bookings
	// (ErrSlotHasBookings).
	Delete(ctx context.Context, id uuid.UUID) error
}

// CalendarService is the outbound port to the external calendar provider.
// Failures are returned as *booking.SyncError and must never affect the
// booking row beyond its calendar status.
type CalendarService interface {
	Enabled() bool
	CreateEvent(ctx context.Context, b *booking.Booking, s *slot.Slot) (eventID string, err error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type UpdateSlotPatch struct {
	Capacity   *int
	Duration   *time.Duration
	MeetingURL *string
	Status     *string
}

func (p UpdateSlotPatch) IsEmpty() bool {
	return p.Capacity == nil && p.Duration == nil && p.MeetingURL == nil && p.Status == nil
}
