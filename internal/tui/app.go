package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskterm/internal/command"
	"github.com/jask/jaskterm/internal/config"
	"github.com/jask/jaskterm/internal/database/repository"
	"github.com/jask/jaskterm/internal/logging"
	"github.com/jask/jaskterm/internal/panel"
	"github.com/jask/jaskterm/internal/service"
	"github.com/jask/jaskterm/internal/workspace"
)

type App struct {
	ctx  context.Context
	cfg  config.Config
	deps Deps
	keys *KeyRegistry
	log  *logging.Entry

	input       textinput.Model
	draft       string
	browsing    bool
	completions []service.Suggestion
	selected    int
	pending     int
	// submitted holds the newest submit generation per panel; older
	// resolutions for the same panel are dropped.
	submitted map[panel.ID]uint64

	watchItems     []repository.WatchlistItem
	watchlistStale bool
	unsubscribe    func()

	status    string
	statusErr bool
	width     int
	height    int
}

// Deps are the long-lived collaborators the model drives.
type Deps struct {
	Workspace  *workspace.Workspace
	Dispatcher *service.Dispatcher
	Searcher   *service.Searcher
	Watchlist  *repository.WatchlistRepo
	Log        *logging.Entry
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	in := textinput.New()
	in.Prompt = "> "
	in.PromptStyle = promptStyle
	in.Placeholder = "AAPL GP 6M"
	in.CharLimit = 256
	in.Focus()

	log := deps.Log
	if log == nil {
		log = logging.Discard().WithComponent("tui")
	}
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		deps:  deps,
		keys:  NewKeyRegistry(),
		log:   log,
		input: in,

		submitted: make(map[panel.ID]uint64),
	}
	a.unsubscribe = deps.Workspace.Subscribe(a.onWorkspaceEvent)
	return a
}

// Close detaches the model from the workspace.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadWatchlist())
}

func (a *App) onWorkspaceEvent(ev workspace.Event) {
	if ev.Kind != workspace.EventPanel {
		return
	}
	if st, err := a.deps.Workspace.Panels().State(ev.Panel); err == nil && st.Type == panel.TypeWatchlist {
		a.watchlistStale = true
	}
}

func (a *App) loadWatchlist() tea.Cmd {
	if a.deps.Watchlist == nil {
		return nil
	}
	return func() tea.Msg {
		items, err := a.deps.Watchlist.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchlistMsg(items)
	}
}

type statusMsg string

type errMsg struct{ error }

type watchlistMsg []repository.WatchlistItem

type resolvedMsg struct {
	seq  uint64
	plan service.Plan
	err  error
}

type searchTickMsg struct{ req service.SearchRequest }

type searchResultMsg service.SearchResult

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.input.Width = max(m.Width-4, 10)
	case tea.KeyMsg:
		return a.handleKey(m)
	case resolvedMsg:
		cmd = a.applyResolved(m)
	case searchTickMsg:
		if m.req.Seq == a.deps.Searcher.Latest() {
			cmd = a.searchCmd(m.req)
		}
	case searchResultMsg:
		a.acceptSearch(service.SearchResult(m))
	case watchlistMsg:
		a.watchItems = m
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.setStatus(m.Error(), true)
	default:
		a.input, cmd = a.input.Update(msg)
	}
	return a, a.withReload(cmd)
}

func (a *App) withReload(cmd tea.Cmd) tea.Cmd {
	if !a.watchlistStale {
		return cmd
	}
	a.watchlistStale = false
	return tea.Batch(cmd, a.loadWatchlist())
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := scopeWorkspace
	if len(a.completions) > 0 {
		scope = scopeCompletion
	}
	b := a.keys.Lookup(m.String(), scope)
	if b == nil {
		return a, a.editInput(m)
	}

	ws := a.deps.Workspace
	switch b.Action {
	case actionQuit:
		a.Close()
		return a, tea.Quit
	case actionFocus1, actionFocus2, actionFocus3, actionFocus4:
		a.leaveHistory()
		a.report(ws.FocusPanel(focusTarget(b.Action)))
	case actionLayoutSingle:
		a.report(ws.SetLayout(workspace.Single))
	case actionLayoutColumns:
		a.report(ws.SetLayout(workspace.Columns))
	case actionLayoutRows:
		a.report(ws.SetLayout(workspace.Rows))
	case actionLayoutGrid:
		a.report(ws.SetLayout(workspace.Grid))
	case actionToggleMaximize:
		a.report(ws.ToggleMaximize())
	case actionSubmit:
		return a, a.submit()
	case actionHistoryPrev:
		a.historyStep(true)
	case actionHistoryNext:
		a.historyStep(false)
	case actionAccept:
		a.acceptCompletion()
	case actionCancel:
		a.dismissCompletions()
	case actionNavigate:
		a.moveSelection(m.String() == "down")
	}
	return a, a.withReload(nil)
}

func focusTarget(action Action) panel.ID {
	switch action {
	case actionFocus2:
		return panel.Panel2
	case actionFocus3:
		return panel.Panel3
	case actionFocus4:
		return panel.Panel4
	default:
		return panel.Panel1
	}
}

// editInput forwards a key to the command line and schedules a debounced
// completion lookup when the text changed.
func (a *App) editInput(m tea.KeyMsg) tea.Cmd {
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	if a.input.Value() == before {
		return cmd
	}
	a.stopBrowsing()
	return tea.Batch(cmd, a.scheduleSearch())
}

func (a *App) scheduleSearch() tea.Cmd {
	query := lastToken(a.input.Value())
	if query == "" {
		a.dismissCompletions()
		return nil
	}
	req := a.deps.Searcher.Begin(query)
	return tea.Tick(a.cfg.Search.Debounce, func(time.Time) tea.Msg {
		return searchTickMsg{req: req}
	})
}

func (a *App) searchCmd(req service.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg(a.deps.Searcher.Run(a.ctx, req))
	}
}

func (a *App) acceptSearch(res service.SearchResult) {
	if !a.deps.Searcher.Accept(res) {
		return
	}
	if res.Err != nil {
		a.log.WithError(res.Err).WithFields(logging.Fields{"query": res.Query}).Warn("search failed")
	}
	a.completions = res.Suggestions
	a.selected = 0
}

func (a *App) dismissCompletions() {
	a.deps.Searcher.Cancel()
	a.completions = nil
	a.selected = 0
}

func (a *App) moveSelection(down bool) {
	n := len(a.completions)
	if n == 0 {
		return
	}
	if down {
		a.selected = (a.selected + 1) % n
	} else {
		a.selected = (a.selected + n - 1) % n
	}
}

// acceptCompletion replaces the token under the cursor with the selected
// suggestion.
func (a *App) acceptCompletion() {
	if a.selected >= len(a.completions) {
		return
	}
	text := a.completions[a.selected].Text
	v := a.input.Value()
	head := v[:len(v)-len(lastToken(v))]
	a.input.SetValue(head + text + " ")
	a.input.CursorEnd()
	a.dismissCompletions()
}

func lastToken(s string) string {
	if s == "" || strings.HasSuffix(s, " ") {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// historyStep walks the focused panel's history. The line being typed is
// kept as a draft and restored when browsing returns to the live line.
func (a *App) historyStep(older bool) {
	store := a.deps.Workspace.Panels()
	id := a.deps.Workspace.Focused()
	var (
		entry string
		ok    bool
		err   error
	)
	if older {
		entry, ok, err = store.HistoryPrevious(id)
	} else {
		entry, ok, err = store.HistoryNext(id)
	}
	if err != nil || !ok {
		return
	}
	if older && !a.browsing {
		a.draft = a.input.Value()
		a.browsing = true
	}
	if !older && entry == "" {
		entry = a.draft
		a.browsing = false
	}
	a.input.SetValue(entry)
	a.input.CursorEnd()
}

func (a *App) leaveHistory() {
	if a.browsing {
		a.input.SetValue(a.draft)
		a.input.CursorEnd()
		a.stopBrowsing()
	}
}

// stopBrowsing drops the focused panel's history cursor back to the live
// line.
func (a *App) stopBrowsing() {
	a.browsing = false
	_ = a.deps.Workspace.Panels().ResetHistoryCursor(a.deps.Workspace.Focused())
}

// submit records and parses on the UI loop and hands symbol resolution to a
// command. The resolved plan comes back as a resolvedMsg.
func (a *App) submit() tea.Cmd {
	raw := a.input.Value()
	a.input.Reset()
	a.draft = ""
	a.stopBrowsing()
	a.dismissCompletions()
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	d := a.deps.Dispatcher
	target := a.deps.Workspace.Focused()
	if err := d.Record(target, raw); err != nil {
		a.report(err)
		return nil
	}
	plan, err := d.Parse(target, raw)
	if err != nil {
		a.report(err)
		return nil
	}
	a.pending++
	a.submitted[target]++
	seq := a.submitted[target]
	a.setStatus("resolving "+strings.TrimSpace(raw)+"...", false)
	return func() tea.Msg {
		p, err := d.Resolve(a.ctx, plan)
		if err != nil {
			return resolvedMsg{seq: seq, plan: plan, err: err}
		}
		return resolvedMsg{seq: seq, plan: p}
	}
}

func (a *App) applyResolved(m resolvedMsg) tea.Cmd {
	if a.pending > 0 {
		a.pending--
	}
	if m.seq != a.submitted[m.plan.Target] {
		a.log.WithFields(logging.Fields{"panel": m.plan.Target.String(), "input": m.plan.Raw}).Debug("dropped superseded submit")
		return nil
	}
	if m.err != nil {
		a.report(m.err)
		return nil
	}
	res, err := a.deps.Dispatcher.Apply(a.ctx, m.plan)
	if err != nil {
		a.report(err)
		return nil
	}
	a.setStatus(res.Message, false)
	switch m.plan.Command.Kind() {
	case command.KindWatchlistAdd, command.KindWatchlistRemove:
		a.watchlistStale = true
	}
	return nil
}

func (a *App) report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, workspace.ErrFocusLocked):
		a.setStatus("restore the maximized panel first", true)
	default:
		a.setStatus(err.Error(), true)
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) View() string {
	return a.render()
}
