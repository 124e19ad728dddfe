package readstore

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{pool: pool}
}

const slotViewColumns = `id, starts_at, ends_at, capacity, booked_count,
	GREATEST(capacity - booked_count, 0) AS remaining, status, meeting_url, created_at`

func (r *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+slotViewColumns+`
		 FROM slots
		 ORDER BY starts_at ASC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}
	return result, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+slotViewColumns+`
		 FROM slots
		 WHERE id = $1`,
		id,
	)
	view, err := scanSlotView(row)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		view      queries.SlotView
		endsAt    *time.Time
		createdAt time.Time
	)
	err := row.Scan(
		&view.ID,
		&view.StartsAt,
		&endsAt,
		&view.Capacity,
		&view.BookedCount,
		&view.Remaining,
		&view.Status,
		&view.MeetingURL,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot view", err)
	}
	view.EndsAt = endsAt
	view.CreatedAt = createdAt
	return &view, nil
}
