//go:build unit || e2e

package builder

import (
	"time"

	dombooking "slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	SlotID          uuid.UUID
	Name            string
	Email           string
	CoachName       string
	Genre           string
	PreworkURL      *string
	CalendarStatus  dombooking.CalendarStatus
	CalendarEventID *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	preworkURL := "https://docs.example.com/prework"
	return &BookingBuilder{
		ID:              uuid.New(),
		SlotID:          uuid.New(),
		Name:            "Taro Yamada",
		Email:           "taro@example.com",
		CoachName:       "Coach Sato",
		Genre:           "E-commerce",
		PreworkURL:      &preworkURL,
		CalendarStatus:  dombooking.CalendarNotAdded,
		CalendarEventID: nil,
		CreatedAt:       time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID,
		b.SlotID,
		b.Name,
		b.Email,
		b.CoachName,
		b.Genre,
		b.PreworkURL,
		b.CalendarStatus,
		b.CalendarEventID,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		SlotID:          b.SlotID,
		Name:            b.Name,
		Email:           b.Email,
		CoachName:       b.CoachName,
		Genre:           b.Genre,
		PreworkURL:      b.PreworkURL,
		CalendarStatus:  string(b.CalendarStatus),
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID:     b.SlotID,
		Name:       b.Name,
		Email:      b.Email,
		CoachName:  b.CoachName,
		Genre:      b.Genre,
		PreworkURL: b.PreworkURL,
	}
}
