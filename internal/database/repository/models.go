package repository

import (
	"context"
	"database/sql"
	"time"
)

// Instrument represents an instruments row.
type Instrument struct {
	ID           string
	Symbol       string
	Name         string
	Exchange     string
	SecurityType string
	CIK          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WatchlistItem is a watched instrument with its display fields joined in.
type WatchlistItem struct {
	InstrumentID string
	Symbol       string
	Name         string
	SortOrder    int
	AddedAt      time.Time
}

// DBTX is satisfied by *sql.DB and *sql.Tx, so repos can join a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
