//go:build unit || e2e

package builder

import (
	"time"

	domslot "slotbook/internal/domain/slot"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID          uuid.UUID
	StartsAt    time.Time
	Duration    time.Duration
	Capacity    int
	BookedCount int
	Status      domslot.Status
	MeetingURL  *string
	CreatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	meetingURL := "https://meet.example.com/session"
	return &SlotBuilder{
		ID:          uuid.New(),
		StartsAt:    time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Duration:    time.Hour,
		Capacity:    5,
		BookedCount: 0,
		Status:      domslot.StatusOpen,
		MeetingURL:  &meetingURL,
		CreatedAt:   time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() *domslot.Slot {
	endsAt := b.StartsAt.Add(b.Duration)
	return domslot.ReconstructSlot(
		b.ID,
		b.StartsAt,
		&endsAt,
		b.Capacity,
		b.BookedCount,
		b.Status,
		b.MeetingURL,
		b.CreatedAt,
	)
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	endsAt := b.StartsAt.Add(b.Duration)
	remaining := b.Capacity - b.BookedCount
	if remaining < 0 {
		remaining = 0
	}
	return &queries.SlotView{
		ID:          b.ID,
		StartsAt:    b.StartsAt,
		EndsAt:      &endsAt,
		Capacity:    int32(b.Capacity),
		BookedCount: int32(b.BookedCount),
		Remaining:   int32(remaining),
		Status:      string(b.Status),
		MeetingURL:  b.MeetingURL,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	capacity := b.Capacity
	durationMinutes := int(b.Duration / time.Minute)
	return reqdto.CreateSlotRequest{
		StartsAt:        b.StartsAt,
		Capacity:        &capacity,
		DurationMinutes: &durationMinutes,
		MeetingURL:      b.MeetingURL,
	}
}
