package response

import (
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/usecase/queries"
)

type SlotResponse struct {
	ID          string     `json:"id"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    int        `json:"capacity"`
	BookedCount int        `json:"booked_count"`
	Remaining   int        `json:"remaining"`
	Status      string     `json:"status"`
	MeetingURL  *string    `json:"meeting_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID.String(),
		StartsAt:    v.StartsAt,
		EndsAt:      v.EndsAt,
		Capacity:    int(v.Capacity),
		BookedCount: int(v.BookedCount),
		Remaining:   int(v.Remaining),
		Status:      v.Status,
		MeetingURL:  v.MeetingURL,
		CreatedAt:   v.CreatedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(views))
	for i, v := range views {
		res[i] = FromSlotView(v)
	}
	return res
}

func FromSlotDomain(s *slot.Slot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID().String(),
		StartsAt:    s.StartsAt(),
		EndsAt:      s.EndsAt(),
		Capacity:    s.Capacity(),
		BookedCount: s.BookedCount(),
		Remaining:   s.Remaining(),
		Status:      string(s.Status()),
		MeetingURL:  s.MeetingURL(),
		CreatedAt:   s.CreatedAt(),
	}
}
