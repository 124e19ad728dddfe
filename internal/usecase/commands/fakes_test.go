//go:build unit

package commands_test

import (
	"context"
	"sync"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// fakeStore mimics the persistence layer's transactional semantics in memory.
// Reserve and Cancel take the store lock for their whole body, matching the
// row-lock guarantees of the real repositories.
type fakeStore struct {
	mu       sync.Mutex
	slots    map[uuid.UUID]*slot.Slot
	bookings map[uuid.UUID]*booking.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:    make(map[uuid.UUID]*slot.Slot),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *fakeStore) addSlot(sl *slot.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sl.ID()] = sl
}

func (s *fakeStore) addBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
}

func (s *fakeStore) adjustBooked(sl *slot.Slot, delta int) *slot.Slot {
	booked := sl.BookedCount() + delta
	if booked < 0 {
		booked = 0
	}
	return slot.ReconstructSlot(
		sl.ID(), sl.StartsAt(), sl.EndsAt(), sl.Capacity(), booked,
		sl.Status(), sl.MeetingURL(), sl.CreatedAt(),
	)
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Reserve(_ context.Context, b *booking.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sl, ok := r.store.slots[b.SlotID()]
	if !ok {
		return errs.ErrSlotNotFound
	}
	if !sl.IsOpen() {
		return errs.ErrSlotClosed
	}
	for _, existing := range r.store.bookings {
		if existing.SlotID() == b.SlotID() && existing.Email() == b.Email() {
			return errs.ErrDuplicateBooking
		}
	}
	if sl.IsFull() {
		return errs.ErrSlotFull
	}

	r.store.bookings[b.ID()] = b
	r.store.slots[sl.ID()] = r.store.adjustBooked(sl, 1)
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID) (*string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, errs.ErrBookingNotFound
	}
	delete(r.store.bookings, id)
	if sl, ok := r.store.slots[b.SlotID()]; ok {
		r.store.slots[sl.ID()] = r.store.adjustBooked(sl, -1)
	}
	return b.CalendarEventID(), nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errs.ErrBookingNotFound, infra.KindNotFound)
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateCalendar(_ context.Context, id uuid.UUID, status booking.CalendarStatus, eventID *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", errs.ErrBookingNotFound, infra.KindNotFound)
	}
	if eventID == nil {
		eventID = b.CalendarEventID()
	}
	r.store.bookings[id] = booking.ReconstructBooking(
		b.ID(), b.SlotID(), b.Name(), b.Email(), b.CoachName(), b.Genre(),
		b.PreworkURL(), status, eventID, b.CreatedAt(),
	)
	return nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) Create(_ context.Context, s *slot.Slot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.slots[s.ID()] = s
	return nil
}

func (r *fakeSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*slot.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errs.ErrSlotNotFound, infra.KindNotFound)
	}
	return s, nil
}

func (r *fakeSlotRepo) Mutate(_ context.Context, id uuid.UUID, fn func(*slot.Slot) error) (*slot.Slot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errs.ErrSlotNotFound, infra.KindNotFound)
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	r.store.slots[id] = s
	return s, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slots[id]; !ok {
		return infra.WrapRepoErr("slot not found", errs.ErrSlotNotFound, infra.KindNotFound)
	}
	for _, b := range r.store.bookings {
		if b.SlotID() == id {
			return errs.ErrSlotHasBookings
		}
	}
	delete(r.store.slots, id)
	return nil
}

type fakeCalendar struct {
	mu          sync.Mutex
	enabled     bool
	createErr   error
	nextEventID string
	created     int
	deleted     []string
	deleteErr   error
}

func (c *fakeCalendar) Enabled() bool {
	return c.enabled
}

func (c *fakeCalendar) CreateEvent(_ context.Context, _ *booking.Booking, _ *slot.Slot) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created++
	if c.createErr != nil {
		return "", c.createErr
	}
	if c.nextEventID == "" {
		return "evt_fake", nil
	}
	return c.nextEventID, nil
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, eventID)
	return nil
}
