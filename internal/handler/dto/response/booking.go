package response

import (
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string        `json:"id"`
	SlotID          string        `json:"slot_id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	CoachName       string        `json:"coach_name"`
	Genre           string        `json:"genre"`
	PreworkURL      *string       `json:"prework_url,omitempty"`
	CalendarStatus  string        `json:"calendar_status"`
	CalendarEventID *string       `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	Slot            *SlotResponse `json:"slot,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:              v.ID.String(),
		SlotID:          v.SlotID.String(),
		Name:            v.Name,
		Email:           v.Email,
		CoachName:       v.CoachName,
		Genre:           v.Genre,
		PreworkURL:      v.PreworkURL,
		CalendarStatus:  v.CalendarStatus,
		CalendarEventID: v.CalendarEventID,
		CreatedAt:       v.CreatedAt,
	}
	if v.Slot != nil {
		resp.Slot = FromSlotView(v.Slot)
	}
	return resp
}

func FromBookingDomain(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID().String(),
		SlotID:          b.SlotID().String(),
		Name:            b.Name(),
		Email:           b.Email(),
		CoachName:       b.CoachName(),
		Genre:           b.Genre(),
		PreworkURL:      b.PreworkURL(),
		CalendarStatus:  string(b.CalendarStatus()),
		CalendarEventID: b.CalendarEventID(),
		CreatedAt:       b.CreatedAt(),
	}
}

type SlotBookingsResponse struct {
	Slot     *SlotResponse      `json:"slot"`
	Bookings []*BookingResponse `json:"bookings"`
}

func FromSlotBookingsViews(views []*queries.SlotBookingsView) []*SlotBookingsResponse {
	res := make([]*SlotBookingsResponse, len(views))
	for i, v := range views {
		bookings := make([]*BookingResponse, len(v.Bookings))
		for j, b := range v.Bookings {
			bookings[j] = FromBookingView(b)
		}
		res[i] = &SlotBookingsResponse{
			Slot:     FromSlotView(&v.Slot),
			Bookings: bookings,
		}
	}
	return res
}

// CalendarSyncResponse reports the outcome of one sync attempt. ErrorType and
// ErrorDetail are populated only when the attempt failed.
type CalendarSyncResponse struct {
	CalendarStatus  string  `json:"calendar_status"`
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	ErrorType       string  `json:"error_type,omitempty"`
	ErrorDetail     string  `json:"error_detail,omitempty"`
}

func FromSyncResult(r *commands.SyncResult) *CalendarSyncResponse {
	return &CalendarSyncResponse{
		CalendarStatus:  string(r.Status),
		CalendarEventID: r.EventID,
		ErrorType:       string(r.ErrorType),
		ErrorDetail:     r.ErrorDetail,
	}
}
