package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	SlotID          uuid.UUID `json:"slot_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CoachName       string    `json:"coach_name"`
	Genre           string    `json:"genre"`
	PreworkURL      *string   `json:"prework_url,omitempty"`
	CalendarStatus  string    `json:"calendar_status"`
	CalendarEventID *string   `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Slot            *SlotView `json:"slot,omitempty"`
}

// SlotBookingsView groups one slot's bookings for the admin overview.
type SlotBookingsView struct {
	Slot     SlotView       `json:"slot"`
	Bookings []*BookingView `json:"bookings"`
}

// ExportRow is the flat projection behind the CSV export.
type ExportRow struct {
	BookingID      uuid.UUID
	BookedAt       time.Time
	SlotStartsAt   time.Time
	SlotEndsAt     *time.Time
	Name           string
	Email          string
	CoachName      string
	Genre          string
	PreworkURL     *string
	CalendarStatus string
}

type ExportFile struct {
	Filename string
	Content  []byte
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListGroupedBySlot(ctx context.Context) ([]*SlotBookingsView, error)
	ExportCSV(ctx context.Context, slotID *uuid.UUID) (*ExportFile, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindGroupedBySlot(ctx context.Context) ([]*SlotBookingsView, error)
	FindExportRows(ctx context.Context, slotID *uuid.UUID) ([]*ExportRow, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListGroupedBySlot(ctx context.Context) ([]*SlotBookingsView, error) {
	return q.store.FindGroupedBySlot(ctx)
}

var exportHeader = []string{
	"booking_id",
	"booked_at",
	"slot_starts_at",
	"slot_ends_at",
	"name",
	"email",
	"coach_name",
	"genre",
	"prework_url",
	"calendar_status",
}

// utf8bom makes the exported file open cleanly in Excel.
var utf8bom = []byte{0xEF, 0xBB, 0xBF}

func (q *bookingQueriesImpl) ExportCSV(ctx context.Context, slotID *uuid.UUID) (*ExportFile, error) {
	rows, err := q.store.FindExportRows(ctx, slotID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load export rows")
	}

	var buf bytes.Buffer
	buf.Write(utf8bom)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, errs.Wrap(err, "failed to write export header")
	}

	for _, row := range rows {
		record := []string{
			row.BookingID.String(),
			row.BookedAt.Format(time.RFC3339),
			row.SlotStartsAt.Format(time.RFC3339),
			"",
			row.Name,
			row.Email,
			row.CoachName,
			row.Genre,
			"",
			row.CalendarStatus,
		}
		if row.SlotEndsAt != nil {
			record[3] = row.SlotEndsAt.Format(time.RFC3339)
		}
		if row.PreworkURL != nil {
			record[8] = *row.PreworkURL
		}
		if err := w.Write(record); err != nil {
			return nil, errs.Wrap(err, "failed to write export row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errs.Wrap(err, "failed to flush export")
	}

	date := q.clock.Now().Format("2006-01-02")
	filename := fmt.Sprintf("all_bookings_%s.csv", date)
	if slotID != nil {
		filename = fmt.Sprintf("bookings_%s_%s.csv", slotID.String(), date)
	}

	return &ExportFile{Filename: filename, Content: buf.Bytes()}, nil
}
