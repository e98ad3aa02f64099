package command

import (
	"strconv"
	"strings"

	"github.com/jask/jaskterm/internal/catalog"
)

// Format renders c as the canonical command line that parses back to c.
// Error commands format as "".
func Format(c Command) string {
	switch v := c.(type) {
	case Overview:
		return join(v.Ticker, mnemonic(catalog.NameOverview))
	case Chart:
		return join(v.Ticker, mnemonic(catalog.NameChart), v.Period)
	case Fundamentals:
		return join(v.Ticker, mnemonic(catalog.NameFundamentals))
	case Filings:
		return join(v.Ticker, mnemonic(catalog.NameFilings), v.FormType)
	case News:
		return join(v.Ticker, mnemonic(catalog.NameNews))
	case Options:
		return join(v.Ticker, mnemonic(catalog.NameOptions))
	case Sentiment:
		return join(v.Ticker, mnemonic(catalog.NameSentiment))
	case MarketNews:
		return join(mnemonic(catalog.NameMarketNews), v.Category)
	case Macro:
		return join(mnemonic(catalog.NameMacro), v.SeriesID)
	case YieldCurve:
		return mnemonic(catalog.NameYieldCurve)
	case EconomicCalendar:
		return join(mnemonic(catalog.NameEconomicCalendar), v.Importance)
	case EarningsCalendar:
		return join(mnemonic(catalog.NameEarningsCalendar), strconv.Itoa(v.Days))
	case Heatmap:
		return join(mnemonic(catalog.NameHeatmap), v.Universe)
	case Crypto:
		return join(mnemonic(catalog.NameCrypto), v.Symbol)
	case Screener:
		return join(mnemonic(catalog.NameScreener), v.Template)
	case Portfolio:
		return join(mnemonic(catalog.NamePortfolio), v.ID)
	case Correlation:
		return join(mnemonic(catalog.NameCorrelation), tickerList(catalog.NameCorrelation, v.Tickers), v.Period)
	case Compare:
		tickers := tickerList(catalog.NameCompare, v.Tickers)
		if claimedByEnum(catalog.NameCompare, v.Benchmark) {
			return join(mnemonic(catalog.NameCompare), tickers, v.Period, v.Benchmark)
		}
		return join(mnemonic(catalog.NameCompare), tickers, v.Benchmark, v.Period)
	case Watchlist:
		return mnemonic(catalog.NameWatchlist)
	case WatchlistAdd:
		return join(mnemonic(catalog.NameWatchlist), "ADD", v.Ticker)
	case WatchlistRemove:
		return join(mnemonic(catalog.NameWatchlist), "REMOVE", v.Ticker)
	case Alerts:
		return join(mnemonic(catalog.NameAlerts), v.Ticker)
	case Launchpad:
		return join(mnemonic(catalog.NameLaunchpad), v.Layout)
	case Help:
		return join(mnemonic(catalog.NameHelp), v.Topic)
	case Status:
		return mnemonic(catalog.NameStatus)
	}
	return ""
}

func mnemonic(name string) string {
	e, _ := catalog.Default().ByName(name)
	return e.Mnemonic
}

func join(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// tickerList joins tickers with commas. A lone ticker that one of the
// function's enum parameters would also accept keeps a trailing comma so it
// still binds to the list.
func tickerList(name string, tickers []string) string {
	s := strings.Join(tickers, ",")
	if len(tickers) == 1 && claimedByEnum(name, tickers[0]) {
		s += ","
	}
	return s
}

func claimedByEnum(name, tok string) bool {
	if tok == "" {
		return false
	}
	e, _ := catalog.Default().ByName(name)
	for _, p := range e.Params {
		if p.Kind == catalog.KindEnum && p.Accepts(tok) {
			return true
		}
	}
	return false
}
