package request

import (
	"time"

	"slotbook/internal/usecase/commands"
)

type CreateSlotRequest struct {
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	Capacity        *int      `json:"capacity" binding:"omitempty,min=1"`
	DurationMinutes *int      `json:"duration_minutes" binding:"omitempty,min=30"`
	MeetingURL      *string   `json:"meeting_url" binding:"omitempty,url"`
}

type UpdateSlotRequest struct {
	Capacity        *int    `json:"capacity" binding:"omitempty,min=1"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=30"`
	MeetingURL      *string `json:"meeting_url" binding:"omitempty,url"`
	Status          *string `json:"status" binding:"omitempty,oneof=open closed"`
}

func (r *CreateSlotRequest) ToParams() commands.CreateSlotParams {
	params := commands.CreateSlotParams{
		StartsAt:   r.StartsAt,
		MeetingURL: r.MeetingURL,
	}
	if r.Capacity != nil {
		params.Capacity = *r.Capacity
	}
	if r.DurationMinutes != nil {
		d := time.Duration(*r.DurationMinutes) * time.Minute
		params.Duration = &d
	}
	return params
}

func (r *UpdateSlotRequest) ToPatch() commands.UpdateSlotPatch {
	patch := commands.UpdateSlotPatch{
		Capacity:   r.Capacity,
		MeetingURL: r.MeetingURL,
		Status:     r.Status,
	}
	if r.DurationMinutes != nil {
		d := time.Duration(*r.DurationMinutes) * time.Minute
		patch.Duration = &d
	}
	return patch
}
