package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskterm/internal/catalog"
	"github.com/jask/jaskterm/internal/panel"
	"github.com/jask/jaskterm/internal/workspace"
)

const (
	fallbackWidth  = 100
	fallbackHeight = 30
)

func (a *App) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

func (a *App) render() string {
	w, h := a.size()
	popup := a.renderCompletions()
	chrome := 3 + lipgloss.Height(popup)
	if popup == "" {
		chrome = 3
	}
	grid := a.renderGrid(w, max(h-chrome, 3))

	parts := []string{grid}
	if popup != "" {
		parts = append(parts, popup)
	}
	parts = append(parts, a.input.View(), a.renderStatus(w), a.renderFooter(w))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderGrid lays the visible panels out on a two-by-two lattice. Panel N
// sits at row (N-1)/2, column (N-1)%2; a maximized panel takes the whole
// area.
func (a *App) renderGrid(width, height int) string {
	snap := a.deps.Workspace.Snapshot()
	cols, rows := 1, 1
	if !snap.IsMaximized() {
		cols, rows = snap.Layout.Dims()
	}
	cellW := max(width/cols, 12)
	cellH := max(height/rows, 3)

	byRow := map[int][]panel.ID{}
	for _, id := range snap.Visible {
		r := 0
		if !snap.IsMaximized() && rows > 1 {
			r = workspace.Position(id) / 2
		}
		byRow[r] = append(byRow[r], id)
	}

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, cols)
		for _, id := range byRow[r] {
			st := snap.Panels[int(id)-1]
			cells = append(cells, a.renderPanel(st, id == snap.Focused, cellW, cellH))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderPanel(st panel.State, focused bool, width, height int) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	innerW := max(width-4, 1)
	innerH := max(height-2, 1)

	header := titleStyle.Render(st.ID.String()) + " " + mutedStyle.Render(panelHeading(st))
	body := []string{header}
	body = append(body, a.panelBody(st)...)
	if len(body) > innerH {
		body = body[:innerH]
	}
	for i, line := range body {
		body[i] = truncate(line, innerW)
	}
	return style.Width(width - 2).Height(innerH).Render(strings.Join(body, "\n"))
}

func panelHeading(st panel.State) string {
	if st.Type == panel.TypeEmpty {
		return "empty"
	}
	title := string(st.Type)
	if e, ok := entryFor(st.Type); ok {
		title = e.Title
	}
	if st.Ticker != "" {
		return st.Ticker + " · " + title
	}
	return title
}

func entryFor(t panel.Type) (catalog.Entry, bool) {
	for _, e := range catalog.Default().Entries() {
		if e.Panel == t {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

func (a *App) panelBody(st panel.State) []string {
	switch st.Type {
	case panel.TypeEmpty:
		return []string{"", mutedStyle.Render("Type a command, e.g. AAPL GP 6M or HELP")}
	case panel.TypeHelp:
		return helpBody(st.Params.HelpTopic)
	case panel.TypeWatchlist:
		return a.watchlistBody()
	case panel.TypeStatus:
		return a.statusBody()
	case panel.TypeLaunchpad:
		return a.launchpadBody()
	}
	out := []string{""}
	if e, ok := entryFor(st.Type); ok {
		out = append(out, textStyle.Render(e.Description))
	}
	return append(out, paramLines(st.Params)...)
}

func paramLines(p panel.Params) []string {
	var out []string
	add := func(label, v string) {
		if v != "" {
			out = append(out, labelStyle.Render(label+": ")+textStyle.Render(v))
		}
	}
	add("period", p.Period)
	add("form", p.FormType)
	add("category", p.NewsCategory)
	add("series", p.SeriesID)
	add("template", p.ScreenerTemplate)
	add("portfolio", p.PortfolioID)
	add("tickers", strings.Join(p.Tickers, ", "))
	add("benchmark", p.Benchmark)
	add("importance", p.EconomicImportance)
	if p.EarningsDays > 0 {
		add("days", strconv.Itoa(p.EarningsDays))
	}
	add("universe", p.HeatmapUniverse)
	add("symbol", p.CryptoSymbol)
	add("ticker", p.AlertTicker)
	return out
}

func helpBody(topic string) []string {
	cat := catalog.Default()
	if topic != "" {
		e, ok := cat.Lookup(topic)
		if !ok {
			return []string{"", "no help for " + topic}
		}
		out := []string{"", titleStyle.Render(e.Usage()), textStyle.Render(e.Description)}
		if len(e.Aliases) > 0 {
			out = append(out, labelStyle.Render("aliases: ")+strings.Join(e.Aliases, ", "))
		}
		if e.Example != "" {
			out = append(out, labelStyle.Render("example: ")+e.Example)
		}
		return out
	}
	out := []string{""}
	for _, e := range cat.Entries() {
		out = append(out, fmt.Sprintf("%-8s %s", e.Mnemonic, e.Title))
	}
	return out
}

func (a *App) watchlistBody() []string {
	if len(a.watchItems) == 0 {
		return []string{"", mutedStyle.Render("Watchlist is empty. WL ADD <TICKER> to add one.")}
	}
	out := []string{""}
	for _, it := range a.watchItems {
		out = append(out, goodStyle.Render(fmt.Sprintf("%-8s", it.Symbol))+" "+textStyle.Render(it.Name))
	}
	return out
}

func (a *App) statusBody() []string {
	snap := a.deps.Workspace.Snapshot()
	mode := "normal"
	if snap.IsMaximized() {
		mode = "maximized " + snap.Maximized.String()
	}
	return []string{
		"",
		labelStyle.Render("layout: ") + string(snap.Layout),
		labelStyle.Render("mode: ") + mode,
		labelStyle.Render("focus: ") + snap.Focused.String(),
		labelStyle.Render("watchlist: ") + strconv.Itoa(len(a.watchItems)),
		labelStyle.Render("history limit: ") + strconv.Itoa(a.cfg.Workspace.HistorySize),
	}
}

func (a *App) launchpadBody() []string {
	snap := a.deps.Workspace.Snapshot()
	out := []string{"", labelStyle.Render("layouts: ") + "F5 1x1  F6 2x1  F7 1x2  F8 2x2"}
	for _, st := range snap.Panels {
		out = append(out, fmt.Sprintf("%s  %s", st.ID, panelHeading(st)))
	}
	return out
}

func (a *App) renderCompletions() string {
	if len(a.completions) == 0 {
		return ""
	}
	rows := make([]string, 0, len(a.completions))
	for i, s := range a.completions {
		line := fmt.Sprintf("%-8s %s", s.Text, mutedStyle.Render(s.Detail))
		if i == a.selected {
			line = popupSelectedStyle.Render(fmt.Sprintf("%-8s", s.Text)) + " " + s.Detail
		}
		rows = append(rows, line)
	}
	return popupStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderStatus(width int) string {
	style := statusBarStyle
	if a.statusErr {
		style = errorBarStyle
	}
	text := strings.ReplaceAll(a.status, "\n", " ")
	if a.pending > 0 && !a.statusErr && text == "" {
		text = "working..."
	}
	return style.Width(width).Render(truncate(text, width))
}

func (a *App) renderFooter(width int) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := a.footerKeys()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	return footerStyle.Width(width).Render(strings.Join(parts, sep))
}

// footerKeys is what the footer advertises for the current scope.
func (a *App) footerKeys() []key.Binding {
	if len(a.completions) > 0 {
		return a.keys.HelpBindings(scopeCompletion)
	}
	return a.keys.HelpBindings(scopeWorkspace)
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
