package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskterm/internal/config"
	"github.com/jask/jaskterm/internal/database"
	"github.com/jask/jaskterm/internal/database/repository"
	"github.com/jask/jaskterm/internal/panel"
	"github.com/jask/jaskterm/internal/service"
	"github.com/jask/jaskterm/internal/workspace"
)

func newTestApp(t *testing.T, layout workspace.Layout) *App {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := database.OpenAndMigrate(ctx, filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ws, err := workspace.New(panel.NewStore(panel.DefaultHistorySize), layout)
	require.NoError(t, err)
	instruments := repository.NewInstrumentRepo(db)
	watchlist := repository.NewWatchlistRepo(db)

	var cfg config.Config
	cfg.Workspace.HistorySize = panel.DefaultHistorySize
	a := New(context.Background(), cfg, Deps{
		Workspace: ws,
		Dispatcher: &service.Dispatcher{
			Workspace: ws,
			Resolver:  &service.InstrumentResolver{Instruments: instruments},
			Watchlist: watchlist,
		},
		Searcher:  &service.Searcher{Instruments: instruments, Limit: 5},
		Watchlist: watchlist,
	})
	t.Cleanup(a.Close)
	return a
}

// run executes cmd and feeds the messages the model understands back into
// it until nothing is left.
func run(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(a, c)
		}
	case resolvedMsg, watchlistMsg, searchTickMsg, searchResultMsg, statusMsg, errMsg:
		_, next := a.Update(msg)
		run(a, next)
	}
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func submit(a *App, line string) {
	a.input.SetValue(line)
	run(a, press(a, tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestSubmitResolvesOffLoopThenApplies(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	a.input.SetValue("aapl gp 6m")

	cmd := press(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Empty(t, a.input.Value())

	st, _ := a.deps.Workspace.Panels().State(panel.Panel1)
	require.Equal(t, panel.TypeEmpty, st.Type, "nothing applied before resolution")
	require.Equal(t, []string{"aapl gp 6m"}, st.History.Entries)

	msg := cmd()
	require.IsType(t, resolvedMsg{}, msg)
	a.Update(msg)

	st, _ = a.deps.Workspace.Panels().State(panel.Panel1)
	require.Equal(t, panel.TypeChart, st.Type)
	require.Equal(t, "AAPL", st.Ticker)
	require.Equal(t, "AAPL GP 6M", a.status)
	require.False(t, a.statusErr)
	require.Contains(t, a.View(), "AAPL")
}

func TestOlderSubmitCannotOverwriteNewer(t *testing.T) {
	a := newTestApp(t, workspace.Single)

	a.input.SetValue("AAPL GP")
	older := press(a, tea.KeyMsg{Type: tea.KeyEnter})
	a.input.SetValue("MSFT GP")
	newer := press(a, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, older)
	require.NotNil(t, newer)

	a.Update(newer())
	a.Update(older())

	st, _ := a.deps.Workspace.Panels().State(panel.Panel1)
	require.Equal(t, "MSFT", st.Ticker)
	require.Equal(t, "MSFT GP 1Y", a.status)
	require.Zero(t, a.pending)
}

func TestParseAndResolveErrorsReachStatus(t *testing.T) {
	a := newTestApp(t, workspace.Single)

	a.input.SetValue("CORR AAPL")
	require.Nil(t, press(a, tea.KeyMsg{Type: tea.KeyEnter}))
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "requires at least 2 tickers")

	submit(a, "ZZZZ DES")
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "unknown symbol")
	st, _ := a.deps.Workspace.Panels().State(panel.Panel1)
	require.Equal(t, panel.TypeEmpty, st.Type)
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	a.input.SetValue("   ")
	require.Nil(t, press(a, tea.KeyMsg{Type: tea.KeyEnter}))
	st, _ := a.deps.Workspace.Panels().State(panel.Panel1)
	require.Empty(t, st.History.Entries)
	require.Empty(t, a.status)
}

func TestFocusLayoutAndMaximizeKeys(t *testing.T) {
	a := newTestApp(t, workspace.Grid)
	ws := a.deps.Workspace

	press(a, alt('2'))
	require.Equal(t, panel.Panel2, ws.Focused())

	press(a, tea.KeyMsg{Type: tea.KeyCtrlX})
	id, ok := ws.Maximized()
	require.True(t, ok)
	require.Equal(t, panel.Panel2, id)

	press(a, alt('1'))
	require.Equal(t, panel.Panel2, ws.Focused())
	require.True(t, a.statusErr)

	press(a, tea.KeyMsg{Type: tea.KeyF7})
	require.Equal(t, workspace.Grid, ws.Layout(), "layout is locked while maximized")

	press(a, tea.KeyMsg{Type: tea.KeyCtrlX})
	_, ok = ws.Maximized()
	require.False(t, ok)
	require.Equal(t, panel.Panel2, ws.Focused())

	press(a, tea.KeyMsg{Type: tea.KeyF7})
	require.Equal(t, workspace.Rows, ws.Layout())
	require.Equal(t, panel.Panel1, ws.Focused())

	view := a.View()
	require.Contains(t, view, "panel-1")
	require.Contains(t, view, "panel-3")
	require.NotContains(t, view, "panel-2")
}

func TestStaleSearchResultsAreDropped(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	s := a.deps.Searcher

	old := s.Begin("a")
	fresh := s.Begin("aap")
	_, cmd := a.Update(searchTickMsg{req: old})
	require.Nil(t, cmd)

	a.Update(searchResultMsg(service.SearchResult{Seq: old.Seq, Suggestions: []service.Suggestion{{Text: "A"}}}))
	require.Empty(t, a.completions)

	_, cmd = a.Update(searchTickMsg{req: fresh})
	require.NotNil(t, cmd)
	run(a, cmd)
	require.NotEmpty(t, a.completions)
	require.Equal(t, "AAPL", a.completions[0].Text)
}

func TestAcceptCompletionReplacesLastToken(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	a.input.SetValue("aapl g")
	req := a.deps.Searcher.Begin("g")
	a.Update(searchResultMsg(service.SearchResult{Seq: req.Seq, Suggestions: []service.Suggestion{
		{Kind: service.SuggestFunction, Text: "GP"},
		{Kind: service.SuggestFunction, Text: "GIP"},
	}}))
	require.Len(t, a.completions, 2)
	require.Contains(t, a.View(), "GIP")

	press(a, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, a.selected)
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	press(a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "aapl GP ", a.input.Value())
	require.Empty(t, a.completions)
}

func TestEscapeDismissesCompletions(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	req := a.deps.Searcher.Begin("ms")
	a.Update(searchResultMsg(service.SearchResult{Seq: req.Seq, Suggestions: []service.Suggestion{{Text: "MSFT"}}}))
	require.NotEmpty(t, a.completions)

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, a.completions)
	require.Greater(t, a.deps.Searcher.Latest(), req.Seq)
}

func TestHistoryBrowsingKeepsDraft(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	submit(a, "AAPL DES")
	submit(a, "GP 1Y")

	a.input.SetValue("draft")
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "GP 1Y", a.input.Value())
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "AAPL DES", a.input.Value())
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "AAPL DES", a.input.Value(), "oldest entry stays put")

	press(a, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "GP 1Y", a.input.Value())
	press(a, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "draft", a.input.Value())
}

func TestEditingEndsHistoryBrowsing(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	submit(a, "AAPL DES")
	submit(a, "GP 1Y")

	press(a, tea.KeyMsg{Type: tea.KeyUp})
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "AAPL DES", a.input.Value())

	// The returned command is the debounced search; it is not needed here.
	_ = press(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.False(t, a.browsing)

	a.input.SetValue("")
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "GP 1Y", a.input.Value(), "browsing restarts at the newest entry")
}

func TestFocusChangeEndsHistoryBrowsing(t *testing.T) {
	a := newTestApp(t, workspace.Columns)
	submit(a, "AAPL DES")
	submit(a, "GP 1Y")

	press(a, tea.KeyMsg{Type: tea.KeyUp})
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	press(a, alt('2'))
	require.Empty(t, a.input.Value())
	press(a, alt('1'))

	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "GP 1Y", a.input.Value())
}

func TestHistoryIsPerPanel(t *testing.T) {
	a := newTestApp(t, workspace.Columns)
	submit(a, "MSFT DES")
	press(a, alt('2'))

	a.input.SetValue("")
	press(a, tea.KeyMsg{Type: tea.KeyUp})
	require.Empty(t, a.input.Value())
}

func TestWatchlistPanelReloadsAfterAdd(t *testing.T) {
	a := newTestApp(t, workspace.Single)
	submit(a, "WL ADD NVDA")
	require.False(t, a.statusErr, a.status)
	require.Len(t, a.watchItems, 1)
	require.Equal(t, "NVDA", a.watchItems[0].Symbol)
	require.True(t, strings.Contains(a.View(), "NVDA"))

	submit(a, "WL ADD NVDA")
	require.True(t, a.statusErr)
	require.Contains(t, a.status, "already")
}

func TestKeyRegistryScopes(t *testing.T) {
	r := NewKeyRegistry()
	require.Equal(t, actionHistoryPrev, r.Lookup("up", scopeWorkspace).Action)
	require.Equal(t, actionNavigate, r.Lookup("up", scopeCompletion).Action)
	require.Equal(t, actionSubmit, r.Lookup("enter", scopeCompletion).Action, "falls back to workspace")
	require.Equal(t, actionToggleMaximize, r.Lookup("Control+X", scopeWorkspace).Action)
	require.Nil(t, r.Lookup("q", scopeWorkspace))

	for _, b := range r.HelpBindings(scopeWorkspace) {
		require.NotEmpty(t, b.Help().Desc)
	}
}
