package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/jaskterm/internal/database/repository"
)

// InstrumentID derives the stable id for a symbol, so seeded and imported
// rows for the same symbol collide instead of duplicating.
func InstrumentID(symbol string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("instrument:"+symbol)).String()
}

type seed struct {
	symbol, name, exchange, kind string
}

var defaultInstruments = []seed{
	{"AAPL", "Apple Inc.", "NASDAQ", "equity"},
	{"MSFT", "Microsoft Corporation", "NASDAQ", "equity"},
	{"NVDA", "NVIDIA Corporation", "NASDAQ", "equity"},
	{"AMZN", "Amazon.com, Inc.", "NASDAQ", "equity"},
	{"GOOGL", "Alphabet Inc. Class A", "NASDAQ", "equity"},
	{"META", "Meta Platforms, Inc.", "NASDAQ", "equity"},
	{"TSLA", "Tesla, Inc.", "NASDAQ", "equity"},
	{"AMD", "Advanced Micro Devices, Inc.", "NASDAQ", "equity"},
	{"NFLX", "Netflix, Inc.", "NASDAQ", "equity"},
	{"BRK-B", "Berkshire Hathaway Inc. Class B", "NYSE", "equity"},
	{"JPM", "JPMorgan Chase & Co.", "NYSE", "equity"},
	{"V", "Visa Inc.", "NYSE", "equity"},
	{"MA", "Mastercard Incorporated", "NYSE", "equity"},
	{"JNJ", "Johnson & Johnson", "NYSE", "equity"},
	{"UNH", "UnitedHealth Group Incorporated", "NYSE", "equity"},
	{"XOM", "Exxon Mobil Corporation", "NYSE", "equity"},
	{"WMT", "Walmart Inc.", "NYSE", "equity"},
	{"KO", "The Coca-Cola Company", "NYSE", "equity"},
	{"DIS", "The Walt Disney Company", "NYSE", "equity"},
	{"BAC", "Bank of America Corporation", "NYSE", "equity"},
	{"SPY", "SPDR S&P 500 ETF Trust", "NYSEARCA", "etf"},
	{"QQQ", "Invesco QQQ Trust", "NASDAQ", "etf"},
	{"DIA", "SPDR Dow Jones Industrial Average ETF", "NYSEARCA", "etf"},
	{"IWM", "iShares Russell 2000 ETF", "NYSEARCA", "etf"},
	{"TLT", "iShares 20+ Year Treasury Bond ETF", "NASDAQ", "etf"},
	{"GLD", "SPDR Gold Shares", "NYSEARCA", "etf"},
	{"BTC-USD", "Bitcoin USD", "CRYPTO", "crypto"},
	{"ETH-USD", "Ethereum USD", "CRYPTO", "crypto"},
	{"SOL-USD", "Solana USD", "CRYPTO", "crypto"},
}

// SeedDefaults ensures a baseline instrument universe exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewInstrumentRepo(db)
	n, err := repo.Count(ctx)
	if err == nil && n > 0 {
		return nil
	}
	for _, s := range defaultInstruments {
		in := repository.Instrument{
			ID:           InstrumentID(s.symbol),
			Symbol:       s.symbol,
			Name:         s.name,
			Exchange:     s.exchange,
			SecurityType: s.kind,
		}
		if err := repo.Upsert(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
