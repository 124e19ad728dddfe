package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateSlotParams struct {
	StartsAt   time.Time
	Capacity   int
	Duration   *time.Duration
	MeetingURL *string
}

// DefaultCapacity applies when the admin omits capacity on creation.
const DefaultCapacity = 5

type SlotCommands interface {
	Create(ctx context.Context, params CreateSlotParams) (*slot.Slot, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateSlotPatch) (*slot.Slot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type slotCommandsImpl struct {
	slots SlotRepository
	clock clock.Clock
}

func NewSlotCommands(slots SlotRepository, clk clock.Clock) SlotCommands {
	return &slotCommandsImpl{slots: slots, clock: clk}
}

func (c *slotCommandsImpl) Create(ctx context.Context, params CreateSlotParams) (*slot.Slot, error) {
	capacity := params.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	s, err := slot.NewSlot(params.StartsAt, capacity, params.Duration, params.MeetingURL, c.clock.Now())
	if err != nil {
		return nil, mapSlotDomainErr(err)
	}

	if err := c.slots.Create(ctx, s); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("slot created",
		"slot_id", s.ID(),
		"starts_at", s.StartsAt(),
		"capacity", s.Capacity())

	return s, nil
}

func (c *slotCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch UpdateSlotPatch) (*slot.Slot, error) {
	if patch.IsEmpty() {
		return nil, errs.Mark(errs.New("no fields to update"), errs.ErrDomainValidation)
	}

	updated, err := c.slots.Mutate(ctx, id, func(s *slot.Slot) error {
		if patch.Capacity != nil {
			if err := s.ChangeCapacity(*patch.Capacity); err != nil {
				return mapSlotDomainErr(err)
			}
		}
		if patch.Duration != nil {
			if err := s.ChangeDuration(*patch.Duration); err != nil {
				return mapSlotDomainErr(err)
			}
		}
		if patch.Status != nil {
			status, err := slot.ParseStatus(*patch.Status)
			if err != nil {
				return mapSlotDomainErr(err)
			}
			if err := s.ChangeStatus(status); err != nil {
				return mapSlotDomainErr(err)
			}
		}
		if patch.MeetingURL != nil {
			s.SetMeetingURL(patch.MeetingURL)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSlotNotFound
		}
		return nil, err
	}

	slog.Info("slot updated", "slot_id", id)

	return updated, nil
}

// Delete refuses removal while bookings exist; there is no cascade.
func (c *slotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.slots.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSlotNotFound
		}
		return err
	}

	slog.Info("slot deleted", "slot_id", id)
	return nil
}

func mapSlotDomainErr(err error) error {
	switch {
	case errors.Is(err, slot.ErrCapacityBelowBooked):
		return errs.Mark(err, errs.ErrCapacityBelowBooked)
	case errors.Is(err, slot.ErrInvalidDuration):
		return errs.Mark(err, errs.ErrInvalidDuration)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
