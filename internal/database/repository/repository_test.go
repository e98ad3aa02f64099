package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskterm/internal/database"
	"github.com/jask/jaskterm/internal/database/repository"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insert(t *testing.T, repo *repository.InstrumentRepo, symbol, name string) repository.Instrument {
	t.Helper()
	in := repository.Instrument{ID: database.InstrumentID(symbol), Symbol: symbol, Name: name, SecurityType: "equity"}
	require.NoError(t, repo.Upsert(context.Background(), in))
	return in
}

func TestInstrumentSearchRanking(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInstrumentRepo(openDB(t))
	insert(t, repo, "AA", "Alcoa Corporation")
	insert(t, repo, "AAPL", "Apple Inc.")
	insert(t, repo, "AAL", "American Airlines Group")
	insert(t, repo, "PAA", "Plains All American Pipeline")
	insert(t, repo, "MSFT", "Microsoft")

	got, err := repo.Search(ctx, "aa", 10)
	require.NoError(t, err)
	var symbols []string
	for _, in := range got {
		symbols = append(symbols, in.Symbol)
	}
	// exact, then prefix in symbol order, then name match
	require.Equal(t, []string{"AA", "AAL", "AAPL"}, symbols)

	got, err = repo.Search(ctx, "american", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "AAL", got[0].Symbol)
	require.Equal(t, "PAA", got[1].Symbol)

	got, err = repo.Search(ctx, "a", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.Search(ctx, "  ", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchEscapesWildcards(t *testing.T) {
	repo := repository.NewInstrumentRepo(openDB(t))
	insert(t, repo, "AAPL", "Apple Inc.")
	got, err := repo.Search(context.Background(), "%", 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBySymbol(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInstrumentRepo(openDB(t))
	want := insert(t, repo, "BRK-B", "Berkshire Hathaway")

	got, err := repo.BySymbol(ctx, "brk-b")
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)

	_, err = repo.BySymbol(ctx, "NOPE")
	require.ErrorIs(t, err, repository.ErrInstrumentNotFound)
}

func TestWatchlistAddRemoveList(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	instruments := repository.NewInstrumentRepo(db)
	wl := repository.NewWatchlistRepo(db)
	aapl := insert(t, instruments, "AAPL", "Apple Inc.")
	msft := insert(t, instruments, "MSFT", "Microsoft")

	require.NoError(t, wl.Add(ctx, msft.ID))
	require.NoError(t, wl.Add(ctx, aapl.ID))
	require.ErrorIs(t, wl.Add(ctx, aapl.ID), repository.ErrAlreadyWatched)

	items, err := wl.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "MSFT", items[0].Symbol)
	require.Equal(t, "AAPL", items[1].Symbol)
	require.Less(t, items[0].SortOrder, items[1].SortOrder)

	require.NoError(t, wl.Remove(ctx, msft.ID))
	require.ErrorIs(t, wl.Remove(ctx, msft.ID), repository.ErrNotWatched)

	items, err = wl.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, aapl.ID, items[0].InstrumentID)
}

func TestWatchlistRejectsUnknownInstrument(t *testing.T) {
	wl := repository.NewWatchlistRepo(openDB(t))
	require.Error(t, wl.Add(context.Background(), "missing"))
}
