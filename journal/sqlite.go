package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/juev/tinvest/pkg/id"
)

// SQLite is a Journal backed by a SQLite file.
type SQLite struct {
	db *sql.DB
}

var _ Journal = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Record stores a and returns it with EntryID and RecordedAt filled in when
// they were empty.
func (j *SQLite) Record(ctx context.Context, a OrderAction) (OrderAction, error) {
	if a.Action == "" {
		return OrderAction{}, errors.New("journal: action is required")
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	a.RecordedAt = a.RecordedAt.UTC()
	if a.EntryID == "" {
		a.EntryID = id.NewAt(a.RecordedAt)
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO order_actions
		(entry_id, recorded_at, action, account, figi, order_id, operation, status,
		 requested_lots, executed_lots, price, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.EntryID, a.RecordedAt, string(a.Action), a.Account, a.FIGI, a.OrderID,
		string(a.Operation), string(a.Status), a.RequestedLots, a.ExecutedLots, a.Price, a.Message,
	)
	if err != nil {
		return OrderAction{}, fmt.Errorf("record %s: %w", a.Action, err)
	}
	return a, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
