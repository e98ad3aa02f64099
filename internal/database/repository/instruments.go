package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var ErrInstrumentNotFound = errors.New("instrument not found")

// InstrumentRepo handles the security master.
type InstrumentRepo struct {
	db DBTX
}

func NewInstrumentRepo(db DBTX) *InstrumentRepo {
	return &InstrumentRepo{db: db}
}

const instrumentColumns = `id, symbol, name, exchange, security_type, cik, created_at, updated_at`

func (r *InstrumentRepo) Upsert(ctx context.Context, in Instrument) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO instruments(id, symbol, name, exchange, security_type, cik, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 symbol=excluded.symbol,
	 name=excluded.name,
	 exchange=excluded.exchange,
	 security_type=excluded.security_type,
	 cik=excluded.cik,
	 updated_at=CURRENT_TIMESTAMP;
	`, in.ID, strings.ToUpper(in.Symbol), in.Name, in.Exchange, in.SecurityType, in.CIK)
	return err
}

// BySymbol looks up an exact symbol, ignoring case.
func (r *InstrumentRepo) BySymbol(ctx context.Context, symbol string) (Instrument, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+instrumentColumns+` FROM instruments WHERE symbol = ?`, strings.ToUpper(symbol))
	in, err := scanInstrument(row)
	if err == sql.ErrNoRows {
		return Instrument{}, ErrInstrumentNotFound
	}
	return in, err
}

func (r *InstrumentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM instruments`).Scan(&n)
	return n, err
}

// Search ranks exact symbol matches first, then symbol prefixes, then
// names containing the query.
func (r *InstrumentRepo) Search(ctx context.Context, query string, limit int) ([]Instrument, error) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil, nil
	}
	like := escapeLike(q)
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+instrumentColumns+`
	FROM instruments
	WHERE symbol = ? OR symbol LIKE ? ESCAPE '\' OR UPPER(name) LIKE ? ESCAPE '\'
	ORDER BY CASE
	  WHEN symbol = ? THEN 0
	  WHEN symbol LIKE ? ESCAPE '\' THEN 1
	  ELSE 2
	END, symbol
	LIMIT ?`, q, like+"%", "%"+like+"%", q, like+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Instrument
	for rows.Next() {
		in, err := scanInstrument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInstrument(s scanner) (Instrument, error) {
	var in Instrument
	err := s.Scan(&in.ID, &in.Symbol, &in.Name, &in.Exchange, &in.SecurityType, &in.CIK, &in.CreatedAt, &in.UpdatedAt)
	return in, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
