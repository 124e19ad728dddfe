package readstore

import (
	"context"
	"errors"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT b.id, b.slot_id, b.name, b.email, b.coach_name, b.genre,
		        b.prework_url, b.calendar_status, b.calendar_event_id, b.created_at,
		        s.id, s.starts_at, s.ends_at, s.capacity, s.booked_count,
		        GREATEST(s.capacity - s.booked_count, 0), s.status, s.meeting_url, s.created_at
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 WHERE b.id = $1`,
		id,
	)

	var (
		view queries.BookingView
		slot queries.SlotView
	)
	err := row.Scan(
		&view.ID,
		&view.SlotID,
		&view.Name,
		&view.Email,
		&view.CoachName,
		&view.Genre,
		&view.PreworkURL,
		&view.CalendarStatus,
		&view.CalendarEventID,
		&view.CreatedAt,
		&slot.ID,
		&slot.StartsAt,
		&slot.EndsAt,
		&slot.Capacity,
		&slot.BookedCount,
		&slot.Remaining,
		&slot.Status,
		&slot.MeetingURL,
		&slot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking view", err)
	}
	view.Slot = &slot
	return &view, nil
}

// FindGroupedBySlot returns every slot that has at least one booking,
// ordered by start time, with the bookings attached in creation order.
func (r *BookingReadStore) FindGroupedBySlot(ctx context.Context) ([]*queries.SlotBookingsView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.starts_at, s.ends_at, s.capacity, s.booked_count,
		        GREATEST(s.capacity - s.booked_count, 0), s.status, s.meeting_url, s.created_at,
		        b.id, b.slot_id, b.name, b.email, b.coach_name, b.genre,
		        b.prework_url, b.calendar_status, b.calendar_event_id, b.created_at
		 FROM slots s
		 JOIN bookings b ON b.slot_id = s.id
		 ORDER BY s.starts_at ASC, b.created_at ASC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by slot", err)
	}
	defer rows.Close()

	var (
		result  []*queries.SlotBookingsView
		current *queries.SlotBookingsView
	)
	for rows.Next() {
		var (
			slot    queries.SlotView
			booking queries.BookingView
		)
		err := rows.Scan(
			&slot.ID,
			&slot.StartsAt,
			&slot.EndsAt,
			&slot.Capacity,
			&slot.BookedCount,
			&slot.Remaining,
			&slot.Status,
			&slot.MeetingURL,
			&slot.CreatedAt,
			&booking.ID,
			&booking.SlotID,
			&booking.Name,
			&booking.Email,
			&booking.CoachName,
			&booking.Genre,
			&booking.PreworkURL,
			&booking.CalendarStatus,
			&booking.CalendarEventID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan grouped booking", err)
		}
		if current == nil || current.Slot.ID != slot.ID {
			current = &queries.SlotBookingsView{Slot: slot}
			result = append(result, current)
		}
		current.Bookings = append(current.Bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate grouped bookings", err)
	}
	return result, nil
}

func (r *BookingReadStore) FindExportRows(ctx context.Context, slotID *uuid.UUID) ([]*queries.ExportRow, error) {
	query := `SELECT b.id, b.created_at, s.starts_at, s.ends_at,
	                 b.name, b.email, b.coach_name, b.genre, b.prework_url, b.calendar_status
	          FROM bookings b
	          JOIN slots s ON s.id = b.slot_id`
	args := []any{}
	if slotID != nil {
		query += ` WHERE b.slot_id = $1`
		args = append(args, *slotID)
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query export rows", err)
	}
	defer rows.Close()

	var result []*queries.ExportRow
	for rows.Next() {
		var row queries.ExportRow
		err := rows.Scan(
			&row.BookingID,
			&row.BookedAt,
			&row.SlotStartsAt,
			&row.SlotEndsAt,
			&row.Name,
			&row.Email,
			&row.CoachName,
			&row.Genre,
			&row.PreworkURL,
			&row.CalendarStatus,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan export row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate export rows", err)
	}
	return result, nil
}
