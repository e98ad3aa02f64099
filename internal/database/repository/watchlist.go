package repository

import (
	"context"
	"errors"
)

var (
	ErrAlreadyWatched = errors.New("already in the watchlist")
	ErrNotWatched     = errors.New("not in the watchlist")
)

// WatchlistRepo handles the single default watchlist.
type WatchlistRepo struct {
	db DBTX
}

func NewWatchlistRepo(db DBTX) *WatchlistRepo {
	return &WatchlistRepo{db: db}
}

// Add appends the instrument at the end of the list.
func (r *WatchlistRepo) Add(ctx context.Context, instrumentID string) error {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO watchlist_items(instrument_id, sort_order, added_at)
	SELECT ?, COALESCE(MAX(sort_order), 0) + 1, CURRENT_TIMESTAMP FROM watchlist_items WHERE true
	ON CONFLICT(instrument_id) DO NOTHING;
	`, instrumentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyWatched
	}
	return nil
}

func (r *WatchlistRepo) Remove(ctx context.Context, instrumentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist_items WHERE instrument_id = ?`, instrumentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotWatched
	}
	return nil
}

func (r *WatchlistRepo) List(ctx context.Context) ([]WatchlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT w.instrument_id, i.symbol, i.name, w.sort_order, w.added_at
	FROM watchlist_items w
	JOIN instruments i ON i.id = w.instrument_id
	ORDER BY w.sort_order, w.added_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []WatchlistItem
	for rows.Next() {
		var it WatchlistItem
		if err := rows.Scan(&it.InstrumentID, &it.Symbol, &it.Name, &it.SortOrder, &it.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
