package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID          uuid.UUID  `json:"id"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    int32      `json:"capacity"`
	BookedCount int32      `json:"booked_count"`
	Remaining   int32      `json:"remaining"`
	Status      string     `json:"status"`
	MeetingURL  *string    `json:"meeting_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SlotQueries interface {
	List(ctx context.Context) ([]*SlotView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type SlotReadStore interface {
	FindAll(ctx context.Context) ([]*SlotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.store.FindAll(ctx)
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.store.FindByID(ctx, id)
}
