// Package command turns a line typed into the terminal's command field into
// a typed Command. Parsing is pure: no lookups, no I/O, and failures come
// back as an Error value rather than a Go error.
package command

import (
	"slices"

	"github.com/jask/jaskterm/internal/catalog"
)

// Kind identifies a Command variant.
type Kind string

const (
	KindOverview         Kind = catalog.NameOverview
	KindChart            Kind = catalog.NameChart
	KindFundamentals     Kind = catalog.NameFundamentals
	KindFilings          Kind = catalog.NameFilings
	KindNews             Kind = catalog.NameNews
	KindOptions          Kind = catalog.NameOptions
	KindSentiment        Kind = catalog.NameSentiment
	KindMarketNews       Kind = catalog.NameMarketNews
	KindMacro            Kind = catalog.NameMacro
	KindYieldCurve       Kind = catalog.NameYieldCurve
	KindEconomicCalendar Kind = catalog.NameEconomicCalendar
	KindEarningsCalendar Kind = catalog.NameEarningsCalendar
	KindHeatmap          Kind = catalog.NameHeatmap
	KindCrypto           Kind = catalog.NameCrypto
	KindScreener         Kind = catalog.NameScreener
	KindPortfolio        Kind = catalog.NamePortfolio
	KindCorrelation      Kind = catalog.NameCorrelation
	KindCompare          Kind = catalog.NameCompare
	KindWatchlist        Kind = catalog.NameWatchlist
	KindWatchlistAdd     Kind = "watchlist_add"
	KindWatchlistRemove  Kind = "watchlist_remove"
	KindAlerts           Kind = catalog.NameAlerts
	KindLaunchpad        Kind = catalog.NameLaunchpad
	KindHelp             Kind = catalog.NameHelp
	KindStatus           Kind = catalog.NameStatus
	KindError            Kind = "error"
)

// Command is implemented only by the variant types of this package.
type Command interface {
	Kind() Kind
	command()
}

type (
	Overview struct {
		Ticker string `yaml:"ticker"`
	}
	Chart struct {
		Ticker string `yaml:"ticker"`
		Period string `yaml:"period"`
	}
	Fundamentals struct {
		Ticker string `yaml:"ticker"`
	}
	Filings struct {
		Ticker   string `yaml:"ticker"`
		FormType string `yaml:"form_type"`
	}
	News struct {
		Ticker string `yaml:"ticker"`
	}
	Options struct {
		Ticker string `yaml:"ticker"`
	}
	Sentiment struct {
		Ticker string `yaml:"ticker"`
	}
)

type (
	MarketNews struct {
		Category string `yaml:"category"`
	}
	// Macro with an empty SeriesID opens the macro dashboard.
	Macro struct {
		SeriesID string `yaml:"series_id,omitempty"`
	}
	YieldCurve       struct{}
	EconomicCalendar struct {
		Importance string `yaml:"importance"`
	}
	EarningsCalendar struct {
		Days int `yaml:"days"`
	}
	Heatmap struct {
		Universe string `yaml:"universe"`
	}
	Crypto struct {
		Symbol string `yaml:"symbol"`
	}
)

type (
	Screener struct {
		Template string `yaml:"template,omitempty"`
	}
	Portfolio struct {
		ID string `yaml:"id,omitempty"`
	}
	Correlation struct {
		Tickers []string `yaml:"tickers"`
		Period  string   `yaml:"period"`
	}
	Compare struct {
		Tickers   []string `yaml:"tickers"`
		Benchmark string   `yaml:"benchmark,omitempty"`
		Period    string   `yaml:"period"`
	}
)

type (
	Watchlist    struct{}
	WatchlistAdd struct {
		Ticker string `yaml:"ticker"`
	}
	WatchlistRemove struct {
		Ticker string `yaml:"ticker"`
	}
	Alerts struct {
		Ticker string `yaml:"ticker,omitempty"`
	}
	// Launchpad with a Layout switches the workspace layout instead of
	// opening the launchpad view.
	Launchpad struct {
		Layout string `yaml:"layout,omitempty"`
	}
	Help struct {
		Topic string `yaml:"topic,omitempty"`
	}
	Status struct{}
)

// Error is the terminal variant: the input could not be understood.
type Error struct {
	Err *ParseError `yaml:"error"`
}

func (Overview) Kind() Kind         { return KindOverview }
func (Chart) Kind() Kind            { return KindChart }
func (Fundamentals) Kind() Kind     { return KindFundamentals }
func (Filings) Kind() Kind          { return KindFilings }
func (News) Kind() Kind             { return KindNews }
func (Options) Kind() Kind          { return KindOptions }
func (Sentiment) Kind() Kind        { return KindSentiment }
func (MarketNews) Kind() Kind       { return KindMarketNews }
func (Macro) Kind() Kind            { return KindMacro }
func (YieldCurve) Kind() Kind       { return KindYieldCurve }
func (EconomicCalendar) Kind() Kind { return KindEconomicCalendar }
func (EarningsCalendar) Kind() Kind { return KindEarningsCalendar }
func (Heatmap) Kind() Kind          { return KindHeatmap }
func (Crypto) Kind() Kind           { return KindCrypto }
func (Screener) Kind() Kind         { return KindScreener }
func (Portfolio) Kind() Kind        { return KindPortfolio }
func (Correlation) Kind() Kind      { return KindCorrelation }
func (Compare) Kind() Kind          { return KindCompare }
func (Watchlist) Kind() Kind        { return KindWatchlist }
func (WatchlistAdd) Kind() Kind     { return KindWatchlistAdd }
func (WatchlistRemove) Kind() Kind  { return KindWatchlistRemove }
func (Alerts) Kind() Kind           { return KindAlerts }
func (Launchpad) Kind() Kind        { return KindLaunchpad }
func (Help) Kind() Kind             { return KindHelp }
func (Status) Kind() Kind           { return KindStatus }
func (Error) Kind() Kind            { return KindError }

func (Overview) command()         {}
func (Chart) command()            {}
func (Fundamentals) command()     {}
func (Filings) command()          {}
func (News) command()             {}
func (Options) command()          {}
func (Sentiment) command()        {}
func (MarketNews) command()       {}
func (Macro) command()            {}
func (YieldCurve) command()       {}
func (EconomicCalendar) command() {}
func (EarningsCalendar) command() {}
func (Heatmap) command()          {}
func (Crypto) command()           {}
func (Screener) command()         {}
func (Portfolio) command()        {}
func (Correlation) command()      {}
func (Compare) command()          {}
func (Watchlist) command()        {}
func (WatchlistAdd) command()     {}
func (WatchlistRemove) command()  {}
func (Alerts) command()           {}
func (Launchpad) command()        {}
func (Help) command()             {}
func (Status) command()           {}
func (Error) command()            {}

// Subject returns the single subject a subject-navigation command targets.
func Subject(c Command) (string, bool) {
	switch v := c.(type) {
	case Overview:
		return v.Ticker, true
	case Chart:
		return v.Ticker, true
	case Fundamentals:
		return v.Ticker, true
	case Filings:
		return v.Ticker, true
	case News:
		return v.Ticker, true
	case Options:
		return v.Ticker, true
	case Sentiment:
		return v.Ticker, true
	}
	return "", false
}

// Symbols lists every symbol in c that has to be resolved before the
// command can be applied, in order and without repeats.
func Symbols(c Command) []string {
	if s, ok := Subject(c); ok {
		return []string{s}
	}
	var out []string
	add := func(s ...string) {
		for _, v := range s {
			if v != "" && !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	switch v := c.(type) {
	case Correlation:
		add(v.Tickers...)
	case Compare:
		add(v.Tickers...)
		add(v.Benchmark)
	case WatchlistAdd:
		add(v.Ticker)
	case WatchlistRemove:
		add(v.Ticker)
	case Alerts:
		add(v.Ticker)
	}
	return out
}
