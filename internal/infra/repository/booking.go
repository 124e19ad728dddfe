package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Reserve runs the whole check-then-act sequence inside one transaction with a
// row lock on the slot, so concurrent reservations against the same slot are
// serialized and the capacity ceiling can never be exceeded:
//
//  1. SELECT ... FOR UPDATE on the slot row blocks other reservations for the
//     same slot until this transaction resolves.
//  2. The closed/duplicate/full checks run against the locked row.
//  3. The insert and the counter increment commit together or not at all.
//
// Serialization failures and deadlocks are retried with backoff.
func (r *BookingRepository) Reserve(ctx context.Context, b *booking.Booking) error {
	_, err := db.WithDefaultRetry(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		var status string
		var capacity, bookedCount int
		err := tx.QueryRow(ctx,
			`SELECT status, capacity, booked_count
			 FROM slots
			 WHERE id = $1
			 FOR UPDATE`,
			b.SlotID(),
		).Scan(&status, &capacity, &bookedCount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return zero, errs.ErrSlotNotFound
			}
			return zero, infra.WrapRepoErr("failed to lock slot row", err)
		}

		if status != "open" {
			return zero, errs.ErrSlotClosed
		}

		var exists bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE slot_id = $1 AND email = $2)`,
			b.SlotID(), b.Email(),
		).Scan(&exists)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to check duplicate booking", err)
		}
		if exists {
			return zero, errs.ErrDuplicateBooking
		}

		if bookedCount >= capacity {
			return zero, errs.ErrSlotFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO bookings (id, slot_id, name, email, coach_name, genre, prework_url, calendar_status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			b.ID(), b.SlotID(), b.Name(), b.Email(), b.CoachName(), b.Genre(), b.PreworkURL(), string(b.CalendarStatus()), b.CreatedAt(),
		)
		if err != nil {
			// The unique (slot_id, email) constraint backstops the duplicate
			// check above.
			if isUniqueViolation(err) {
				return zero, errs.ErrDuplicateBooking
			}
			return zero, infra.WrapRepoErr("failed to insert booking", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE slots SET booked_count = booked_count + 1 WHERE id = $1`,
			b.SlotID(),
		)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to increment booked count", err)
		}

		return zero, nil
	})
	return err
}

// Cancel removes the booking and releases its seat. The decrement is floored
// at zero so a drifted counter can never go negative.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) (*string, error) {
	return db.RunInTx(ctx, r.pool, func(tx pgx.Tx) (*string, error) {
		var slotID uuid.UUID
		var calendarEventID *string
		err := tx.QueryRow(ctx,
			`DELETE FROM bookings WHERE id = $1 RETURNING slot_id, calendar_event_id`,
			id,
		).Scan(&slotID, &calendarEventID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, errs.ErrBookingNotFound
			}
			return nil, infra.WrapRepoErr("failed to delete booking", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE slots SET booked_count = GREATEST(booked_count - 1, 0) WHERE id = $1`,
			slotID,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decrement booked count", err)
		}

		return calendarEventID, nil
	})
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, slot_id, name, email, coach_name, genre, prework_url, calendar_status, calendar_event_id, created_at
		 FROM bookings
		 WHERE id = $1`,
		id,
	)
	return scanBooking(row)
}

// UpdateCalendar persists a sync outcome. A nil eventID keeps any previously
// stored id so an earlier remote event stays referenced.
func (r *BookingRepository) UpdateCalendar(ctx context.Context, id uuid.UUID, status booking.CalendarStatus, eventID *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings
		 SET calendar_status = $2,
		     calendar_event_id = COALESCE($3, calendar_event_id)
		 WHERE id = $1`,
		id, string(status), eventID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update calendar status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, slotID                    uuid.UUID
		name, email, coachName, genre string
		preworkURL, calendarEventID   *string
		calendarStatus                string
		createdAt                     time.Time
	)
	err := row.Scan(&id, &slotID, &name, &email, &coachName, &genre, &preworkURL, &calendarStatus, &calendarEventID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	return booking.ReconstructBooking(
		id, slotID,
		name, email, coachName, genre,
		preworkURL,
		booking.CalendarStatus(calendarStatus),
		calendarEventID,
		createdAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
