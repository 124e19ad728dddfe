package request

import (
	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID     uuid.UUID `json:"slot_id" binding:"required"`
	Name       string    `json:"name" binding:"required,max=100"`
	Email      string    `json:"email" binding:"required,email"`
	CoachName  string    `json:"coach_name" binding:"required,max=100"`
	Genre      string    `json:"genre" binding:"required,max=100"`
	PreworkURL *string   `json:"prework_url" binding:"omitempty,url"`
}

func (r *CreateBookingRequest) ToParams() commands.ReserveParams {
	return commands.ReserveParams{
		SlotID:     r.SlotID,
		Name:       r.Name,
		Email:      r.Email,
		CoachName:  r.CoachName,
		Genre:      r.Genre,
		PreworkURL: r.PreworkURL,
	}
}
