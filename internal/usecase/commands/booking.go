package commands

import (
	"context"
	"errors"
	"log/slog"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReserveParams struct {
	SlotID     uuid.UUID
	Name       string
	Email      string
	CoachName  string
	Genre      string
	PreworkURL *string
}

// SyncResult reports the outcome of one calendar sync attempt. A failed
// attempt is an expected outcome, not an error: the booking stays intact and
// the classification is carried here for diagnostics.
type SyncResult struct {
	Status      booking.CalendarStatus
	EventID     *string
	ErrorType   booking.SyncErrorType
	ErrorDetail string
}

type BookingCommands interface {
	Reserve(ctx context.Context, params ReserveParams) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	// AddToCalendar is the participant-facing sync: a booking that already has
	// a remote event is returned as-is without a second attempt.
	AddToCalendar(ctx context.Context, id uuid.UUID) (*SyncResult, error)
	// ResyncCalendar is the admin-facing sync: it always attempts event
	// creation, even when the booking is already marked created. The previous
	// remote event is not replaced (at-least-once semantics).
	ResyncCalendar(ctx context.Context, id uuid.UUID) (*SyncResult, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	slots    SlotRepository
	calendar CalendarService
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingRepository, slots SlotRepository, calendar CalendarService, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		slots:    slots,
		calendar: calendar,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Reserve(ctx context.Context, params ReserveParams) (*booking.Booking, error) {
	b, err := booking.NewBooking(
		params.SlotID,
		params.Name,
		params.Email,
		params.CoachName,
		params.Genre,
		params.PreworkURL,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Sync never runs inside the reserve transaction; the status only records
	// up front that no attempt will ever succeed without configuration.
	if !c.calendar.Enabled() {
		b.MarkCalendarDisabled()
	}

	if err := c.bookings.Reserve(ctx, b); err != nil {
		return nil, err
	}

	slog.Info("booking reserved",
		"booking_id", b.ID(),
		"slot_id", b.SlotID(),
		"email", b.Email())

	return b, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	eventID, err := c.bookings.Cancel(ctx, id)
	if err != nil {
		return err
	}

	slog.Info("booking canceled", "booking_id", id)

	// Best effort: the cancellation stands whether or not the remote event can
	// be removed.
	if eventID != nil && c.calendar.Enabled() {
		if delErr := c.calendar.DeleteEvent(ctx, *eventID); delErr != nil {
			slog.Warn("failed to delete calendar event for canceled booking",
				"booking_id", id,
				"event_id", *eventID,
				"error", delErr.Error())
		}
	}

	return nil
}

func (c *bookingCommandsImpl) AddToCalendar(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if b.HasCalendarEvent() {
		return &SyncResult{
			Status:  booking.CalendarCreated,
			EventID: b.CalendarEventID(),
		}, nil
	}

	return c.sync(ctx, b)
}

func (c *bookingCommandsImpl) ResyncCalendar(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if b.CalendarStatus() == booking.CalendarCreated {
		slog.Warn("re-syncing an already created booking; a second remote event will be created",
			"booking_id", b.ID())
	}

	return c.sync(ctx, b)
}

func (c *bookingCommandsImpl) sync(ctx context.Context, b *booking.Booking) (*SyncResult, error) {
	if !c.calendar.Enabled() {
		b.MarkCalendarDisabled()
		if err := c.bookings.UpdateCalendar(ctx, b.ID(), booking.CalendarDisabled, nil); err != nil {
			return nil, errs.Wrap(err, "failed to persist calendar status")
		}
		return nil, errs.ErrCalendarDisabled
	}

	s, err := c.slots.FindByID(ctx, b.SlotID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotNotFound
		}
		return nil, errs.Wrap(err, "failed to find slot for booking")
	}

	eventID, createErr := c.calendar.CreateEvent(ctx, b, s)
	if createErr != nil {
		b.MarkCalendarFailed()
		if err := c.bookings.UpdateCalendar(ctx, b.ID(), booking.CalendarFailed, nil); err != nil {
			// The attempt already failed; losing the status update must not
			// mask the original classification.
			slog.Error("failed to persist failed calendar status",
				"booking_id", b.ID(),
				"error", err.Error())
		}

		result := &SyncResult{Status: booking.CalendarFailed, ErrorType: booking.SyncErrUnknown}
		var syncErr *booking.SyncError
		if errors.As(createErr, &syncErr) {
			result.ErrorType = syncErr.Type
			result.ErrorDetail = syncErr.Detail
		}

		slog.Error("calendar sync failed",
			"booking_id", b.ID(),
			"error_type", string(result.ErrorType),
			"error", createErr.Error())

		return result, nil
	}

	if err := b.MarkCalendarCreated(eventID); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.bookings.UpdateCalendar(ctx, b.ID(), booking.CalendarCreated, &eventID); err != nil {
		// The remote event exists; report partial success rather than hide it.
		slog.Error("calendar event created but status update failed",
			"booking_id", b.ID(),
			"event_id", eventID,
			"error", err.Error())
	}

	slog.Info("calendar sync succeeded", "booking_id", b.ID(), "event_id", eventID)

	return &SyncResult{
		Status:  booking.CalendarCreated,
		EventID: &eventID,
	}, nil
}
