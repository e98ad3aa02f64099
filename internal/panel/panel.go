// Package panel holds the per-panel navigation state of the workspace: which
// view a panel shows, the subject it is pointed at, the view parameters and
// the panel's own command history.
package panel

import (
	"fmt"
	"slices"
	"strings"
)

// ID names one of the four fixed panel slots.
type ID int

const (
	Panel1 ID = iota + 1
	Panel2
	Panel3
	Panel4
)

// Count is the number of panel slots in a workspace.
const Count = 4

// IDs lists every panel identity in ascending order.
func IDs() []ID {
	return []ID{Panel1, Panel2, Panel3, Panel4}
}

func (id ID) Valid() bool {
	return id >= Panel1 && id <= Panel4
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("panel-?(%d)", int(id))
	}
	return fmt.Sprintf("panel-%d", int(id))
}

func (id ID) index() int {
	return int(id) - 1
}

// ParseID accepts "panel-3", "3" or "p3".
func ParseID(s string) (ID, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "panel-")
	v = strings.TrimPrefix(v, "p")
	if len(v) == 1 && v[0] >= '1' && v[0] <= '4' {
		return ID(v[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPanel, s)
}

// Type is the kind of view a panel is showing.
type Type string

const (
	TypeEmpty            Type = "empty"
	TypeOverview         Type = "overview"
	TypeChart            Type = "chart"
	TypeFundamentals     Type = "fundamentals"
	TypeFilings          Type = "filings"
	TypeNews             Type = "news"
	TypeOptions          Type = "options"
	TypeSentiment        Type = "sentiment"
	TypeMarketNews       Type = "market_news"
	TypeMacro            Type = "macro"
	TypeYieldCurve       Type = "yield_curve"
	TypeEconomicCalendar Type = "economic_calendar"
	TypeEarningsCalendar Type = "earnings_calendar"
	TypeHeatmap          Type = "heatmap"
	TypeCrypto           Type = "crypto"
	TypeScreener         Type = "screener"
	TypePortfolio        Type = "portfolio"
	TypeCorrelation      Type = "correlation"
	TypeCompare          Type = "compare"
	TypeWatchlist        Type = "watchlist"
	TypeAlerts           Type = "alerts"
	TypeLaunchpad        Type = "launchpad"
	TypeHelp             Type = "help"
	TypeStatus           Type = "status"
)

// Types lists every panel type, empty first.
func Types() []Type {
	return slices.Clone(typeOrder)
}

var typeOrder = []Type{
	TypeEmpty, TypeOverview, TypeChart, TypeFundamentals, TypeFilings, TypeNews,
	TypeOptions, TypeSentiment, TypeMarketNews, TypeMacro, TypeYieldCurve,
	TypeEconomicCalendar, TypeEarningsCalendar, TypeHeatmap, TypeCrypto,
	TypeScreener, TypePortfolio, TypeCorrelation, TypeCompare, TypeWatchlist,
	TypeAlerts, TypeLaunchpad, TypeHelp, TypeStatus,
}

func (t Type) Valid() bool {
	_, ok := typeFields[t]
	return ok
}

// Subject is a resolved symbol. Ticker and InstrumentID always travel together.
type Subject struct {
	Ticker       string
	InstrumentID string
}

func (s Subject) IsZero() bool {
	return s.Ticker == "" && s.InstrumentID == ""
}

func (s Subject) complete() bool {
	return s.Ticker != "" && s.InstrumentID != ""
}

// State is the navigation state of one panel.
type State struct {
	ID           ID
	Type         Type
	Ticker       string
	InstrumentID string
	Params       Params
	Maximized    bool
	History      History
}

// Subject returns the current subject, zero when none is set.
func (s State) Subject() Subject {
	return Subject{Ticker: s.Ticker, InstrumentID: s.InstrumentID}
}

func (s State) clone() State {
	out := s
	out.Params = s.Params.clone()
	out.History = s.History.clone()
	return out
}
