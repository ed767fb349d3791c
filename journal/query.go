package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectActions = `
	SELECT entry_id, recorded_at, action, account, figi, order_id, operation, status,
	       requested_lots, executed_lots, price, message
	FROM order_actions`

type scanner interface {
	Scan(dest ...any) error
}

func scanAction(s scanner) (OrderAction, error) {
	var a OrderAction
	err := s.Scan(
		&a.EntryID,
		&a.RecordedAt,
		&a.Action,
		&a.Account,
		&a.FIGI,
		&a.OrderID,
		&a.Operation,
		&a.Status,
		&a.RequestedLots,
		&a.ExecutedLots,
		&a.Price,
		&a.Message,
	)
	a.RecordedAt = a.RecordedAt.UTC()
	return a, err
}

// Get returns a single entry by id.
func (j *SQLite) Get(ctx context.Context, entryID string) (OrderAction, error) {
	row := j.db.QueryRowContext(ctx, selectActions+` WHERE entry_id = ?`, entryID)

	a, err := scanAction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderAction{}, fmt.Errorf("entry %q: %w", entryID, ErrNotFound)
		}
		return OrderAction{}, err
	}
	return a, nil
}

// ListBetween returns entries recorded within [start, end), oldest first.
func (j *SQLite) ListBetween(ctx context.Context, start, end time.Time) ([]OrderAction, error) {
	rows, err := j.db.QueryContext(ctx, selectActions+`
		WHERE recorded_at >= ? AND recorded_at < ?
		ORDER BY recorded_at ASC, entry_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []OrderAction{}
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
