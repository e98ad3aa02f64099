package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jask/jaskterm/internal/catalog"
	"github.com/jask/jaskterm/internal/database"
	"github.com/jask/jaskterm/internal/database/repository"
)

// ImportService loads instrument lists into the security master.
type ImportService struct {
	DB *sql.DB
}

type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// secTicker is one row of SEC EDGAR's company_tickers.json.
type secTicker struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// ImportSECTickers reads the EDGAR company ticker file, an object keyed by
// row number, and upserts every usable row in one transaction.
func (s *ImportService) ImportSECTickers(ctx context.Context, r io.Reader) (ImportResult, error) {
	var raw map[string]secTicker
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return ImportResult{}, fmt.Errorf("decode tickers: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	res := ImportResult{}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		repo := repository.NewInstrumentRepo(tx)
		for _, k := range keys {
			row := raw[k]
			symbol := strings.ToUpper(strings.TrimSpace(row.Ticker))
			if !catalog.ValidSymbol(symbol) || strings.TrimSpace(row.Title) == "" {
				res.Skipped++
				continue
			}
			cik := fmt.Sprintf("%010d", row.CIK)
			in := repository.Instrument{
				ID:           database.InstrumentID(symbol),
				Symbol:       symbol,
				Name:         strings.TrimSpace(row.Title),
				Exchange:     "US",
				SecurityType: "equity",
				CIK:          &cik,
			}
			if err := repo.Upsert(ctx, in); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("row %s (%s): %w", k, symbol, err))
				continue
			}
			res.Imported++
		}
		return nil
	})
	return res, err
}
