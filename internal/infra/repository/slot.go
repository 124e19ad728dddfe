package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/slot"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slotbook/internal/pkg/errs"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO slots (id, starts_at, ends_at, capacity, booked_count, status, meeting_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.StartsAt(), s.EndsAt(), s.Capacity(), s.BookedCount(), string(s.Status()), s.MeetingURL(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, starts_at, ends_at, capacity, booked_count, status, meeting_url, created_at
		 FROM slots
		 WHERE id = $1`,
		id,
	)
	return scanSlot(row)
}

// Mutate applies fn to the slot under a row lock, so invariants that read
// booked_count (the capacity floor) hold against concurrent reservations.
func (r *SlotRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(*slot.Slot) error) (*slot.Slot, error) {
	return db.WithDefaultRetry(ctx, r.pool, func(tx pgx.Tx) (*slot.Slot, error) {
		row := tx.QueryRow(ctx,
			`SELECT id, starts_at, ends_at, capacity, booked_count, status, meeting_url, created_at
			 FROM slots
			 WHERE id = $1
			 FOR UPDATE`,
			id,
		)
		s, err := scanSlot(row)
		if err != nil {
			return nil, err
		}

		if err := fn(s); err != nil {
			return nil, err
		}

		_, err = tx.Exec(ctx,
			`UPDATE slots
			 SET ends_at = $2, capacity = $3, status = $4, meeting_url = $5
			 WHERE id = $1`,
			s.ID(), s.EndsAt(), s.Capacity(), string(s.Status()), s.MeetingURL(),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to update slot", err)
		}

		return s, nil
	})
}

// Delete refuses removal while bookings reference the slot; there is no
// cascade.
func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := db.RunInTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		var bookingCount int
		err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM bookings WHERE slot_id = $1`,
			id,
		).Scan(&bookingCount)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to count slot bookings", err)
		}
		if bookingCount > 0 {
			return zero, errs.ErrSlotHasBookings
		}

		tag, err := tx.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to delete slot", err)
		}
		if tag.RowsAffected() == 0 {
			return zero, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
		}

		return zero, nil
	})
	return err
}

func scanSlot(row pgx.Row) (*slot.Slot, error) {
	var (
		id                    uuid.UUID
		startsAt, createdAt   time.Time
		endsAt                *time.Time
		capacity, bookedCount int
		status                string
		meetingURL            *string
	)
	err := row.Scan(&id, &startsAt, &endsAt, &capacity, &bookedCount, &status, &meetingURL, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}

	return slot.ReconstructSlot(
		id,
		startsAt,
		endsAt,
		capacity, bookedCount,
		slot.Status(status),
		meetingURL,
		createdAt,
	), nil
}
