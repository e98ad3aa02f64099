package command

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jask/jaskterm/internal/catalog"
)

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		context string
		want    Command
	}{
		{"subject first with period", "AAPL GP 6M", "", Chart{Ticker: "AAPL", Period: "6M"}},
		{"context subject and default period", "GP", "MSFT", Chart{Ticker: "MSFT", Period: "1Y"}},
		{"inline beats context", "aapl des", "MSFT", Overview{Ticker: "AAPL"}},
		{"bare subject", "aapl", "", Overview{Ticker: "AAPL"}},
		{"unknown second token", "AAPL XYZ", "", Overview{Ticker: "AAPL"}},
		{"alias", "tsla news", "", News{Ticker: "TSLA"}},
		{"filings default form", "AAPL CF", "", Filings{Ticker: "AAPL", FormType: "ALL"}},
		{"filings form", "AAPL CF 10-q", "", Filings{Ticker: "AAPL", FormType: "10-Q"}},
		{"market news default", "N", "", MarketNews{Category: "GENERAL"}},
		{"market news category", "n crypto", "AAPL", MarketNews{Category: "CRYPTO"}},
		{"macro dashboard", "ECST", "", Macro{}},
		{"macro series", "ecst unrate", "", Macro{SeriesID: "UNRATE"}},
		{"yield curve", "YC", "", YieldCurve{}},
		{"economic calendar", "ECO high", "", EconomicCalendar{Importance: "HIGH"}},
		{"earnings default days", "EVTS", "", EarningsCalendar{Days: 7}},
		{"earnings days", "EVTS 30", "", EarningsCalendar{Days: 30}},
		{"heatmap", "HMAP ndx", "", Heatmap{Universe: "NDX"}},
		{"crypto default", "XBT", "", Crypto{Symbol: "BTC-USD"}},
		{"crypto pair", "XBT eth-usd", "", Crypto{Symbol: "ETH-USD"}},
		{"crypto subject first", "ETH-USD XBT", "", Crypto{Symbol: "ETH-USD"}},
		{"screener", "EQS value", "", Screener{Template: "VALUE"}},
		{"portfolio keeps case", "PORT core", "", Portfolio{ID: "core"}},
		{"correlation", "CORR aapl,msft 5y", "", Correlation{Tickers: []string{"AAPL", "MSFT"}, Period: "5Y"}},
		{"correlation subject prepended and deduped", "AAPL CORR msft,aapl,NVDA", "", Correlation{Tickers: []string{"AAPL", "MSFT", "NVDA"}, Period: "1Y"}},
		{"compare full", "COMP AAPL,MSFT SPY 6M", "", Compare{Tickers: []string{"AAPL", "MSFT"}, Benchmark: "SPY", Period: "6M"}},
		{"compare period first", "COMP 6M AAPL", "", Compare{Tickers: []string{"AAPL"}, Period: "6M"}},
		{"compare subject only", "NVDA COMP", "", Compare{Tickers: []string{"NVDA"}, Period: "1Y"}},
		{"watchlist view", "WL", "AAPL", Watchlist{}},
		{"explicit watchlist view", "wl view", "", Watchlist{}},
		{"watchlist add", "WL ADD aapl", "", WatchlistAdd{Ticker: "AAPL"}},
		{"watchlist add reversed", "WL aapl add", "", WatchlistAdd{Ticker: "AAPL"}},
		{"watchlist remove from context", "WL REMOVE", "TSLA", WatchlistRemove{Ticker: "TSLA"}},
		{"watchlist subject first", "MSFT WL ADD", "", WatchlistAdd{Ticker: "MSFT"}},
		{"alerts", "ALRT", "AAPL", Alerts{}},
		{"alerts ticker", "ALRT nvda", "", Alerts{Ticker: "NVDA"}},
		{"launchpad", "LP", "", Launchpad{}},
		{"launchpad layout", "LAUNCH 2x2", "", Launchpad{Layout: "2X2"}},
		{"help", "?", "", Help{}},
		{"help topic alias", "HELP chart", "", Help{Topic: "GP"}},
		{"status", "sys", "", Status{}},
		{"extra whitespace", "  AAPL \t GP   3M ", "", Chart{Ticker: "AAPL", Period: "3M"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, tt.context)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q, %q): expected %#v, got %#v", tt.input, tt.context, tt.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		context string
		kind    ErrorKind
		field   string
		message string
	}{
		{"empty", "", "", EmptyInput, "", "empty command"},
		{"blank", "   \t ", "AAPL", EmptyInput, "", "empty command"},
		{"bad first token", "g$p", "", UnknownMnemonic, "mnemonic", `unknown command "g$p"`},
		{"missing subject", "GP", "", MissingSubject, "subject", "GP requires a subject"},
		{"missing subject via alias", "overview", "", MissingSubject, "subject", "DES requires a subject"},
		{"too few tickers", "CORR AAPL", "", ArityViolation, "tickers", "correlation requires at least 2 tickers"},
		{"no tickers", "CORR", "", ArityViolation, "tickers", "correlation requires at least 2 tickers"},
		{"too many tickers", "COMP A,B,C,D,E,F", "", ArityViolation, "tickers", "compare accepts at most 5 tickers"},
		{"watchlist without subject", "WL ADD", "", MissingSubject, "subject", "no active subject"},
		{"watchlist view with ticker", "AAPL WL", "", InvalidArgument, "ticker", "WL takes a ticker only with ADD or REMOVE"},
		{"subject on market function", "AAPL N", "", InvalidArgument, "subject", "N does not take a subject"},
		{"bad period", "GP 7M", "AAPL", InvalidArgument, "period", `invalid period "7M", expected one of 1M, 3M, 6M, 1Y, 2Y, 5Y, MAX`},
		{"extra argument", "AAPL GP 6M 1Y", "", InvalidArgument, "arguments", `unexpected argument "1Y"`},
		{"days out of range", "EVTS 0", "", InvalidArgument, "days", "days must be between 1 and 90"},
		{"days not a number", "EVTS soon", "", InvalidArgument, "days", `days must be a whole number, got "soon"`},
		{"bad list element", "CORR AAPL,$$", "", InvalidArgument, "tickers", `invalid ticker "$$"`},
		{"bad layout", "LAUNCH 3x3", "", InvalidArgument, "layout", `invalid layout "3x3", expected one of 1X1, 2X1, 1X2, 2X2`},
		{"unknown help topic", "HELP nope", "", InvalidArgument, "topic", `unknown function "nope"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, tt.context)
			e, ok := got.(Error)
			if !ok {
				t.Fatalf("Parse(%q): expected error, got %#v", tt.input, got)
			}
			if e.Err.Kind != tt.kind || e.Err.Field != tt.field || e.Err.Message != tt.message {
				t.Fatalf("Parse(%q): expected %s/%s %q, got %s/%s %q", tt.input, tt.kind, tt.field, tt.message, e.Err.Kind, e.Err.Field, e.Err.Message)
			}
		})
	}
}

func TestArityBoundsReported(t *testing.T) {
	e := Parse("CORR AAPL", "").(Error)
	if e.Err.Min != 2 || e.Err.Max != 20 {
		t.Fatalf("expected bounds 2..20, got %d..%d", e.Err.Min, e.Err.Max)
	}
}

func TestUnknownMnemonicSuggests(t *testing.T) {
	e, ok := Parse("GP$", "").(Error)
	if !ok {
		t.Fatalf("expected error")
	}
	if len(e.Err.Suggestions) == 0 || e.Err.Suggestions[0] != "GP" {
		t.Fatalf("expected GP first among suggestions, got %v", e.Err.Suggestions)
	}
	if !strings.Contains(e.Err.Error(), "did you mean GP") {
		t.Fatalf("expected suggestion in message, got %q", e.Err.Error())
	}
}

func TestParseIsDeterministic(t *testing.T) {
	inputs := []string{"AAPL GP 6M", "CORR AAPL", "COMP AAPL,MSFT SPY", "WL ADD", "x$", ""}
	for _, in := range inputs {
		a, b := Parse(in, "MSFT"), Parse(in, "MSFT")
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("Parse(%q) not deterministic: %#v vs %#v", in, a, b)
		}
	}
}

func TestListsAreFreshPerParse(t *testing.T) {
	a := Parse("CORR AAPL,MSFT", "").(Correlation)
	a.Tickers[0] = "ZZZ"
	b := Parse("CORR AAPL,MSFT", "").(Correlation)
	if b.Tickers[0] != "AAPL" {
		t.Fatalf("expected independent slices, got %v", b.Tickers)
	}
}

func TestCatalogExamplesRoundTrip(t *testing.T) {
	for _, e := range catalog.Default().Entries() {
		cmd := Parse(e.Example, "")
		if _, bad := cmd.(Error); bad {
			t.Fatalf("example %q for %s failed: %v", e.Example, e.Mnemonic, cmd.(Error).Err)
		}
		want := Kind(e.Name)
		if e.Name == catalog.NameWatchlist && strings.Contains(e.Example, "ADD") {
			want = KindWatchlistAdd
		}
		if cmd.Kind() != want {
			t.Fatalf("example %q: expected kind %s, got %s", e.Example, want, cmd.Kind())
		}
		again := Parse(Format(cmd), "")
		if !reflect.DeepEqual(cmd, again) {
			t.Fatalf("Format(%#v) = %q parsed to %#v", cmd, Format(cmd), again)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Chart{Ticker: "AAPL", Period: "6M"}, "AAPL GP 6M"},
		{Compare{Tickers: []string{"AAPL", "MSFT"}, Period: "1Y"}, "COMP AAPL,MSFT 1Y"},
		{WatchlistRemove{Ticker: "TSLA"}, "WL REMOVE TSLA"},
		{EarningsCalendar{Days: 14}, "EVTS 14"},
		{Macro{}, "ECST"},
		{Error{Err: errEmpty()}, ""},
	}
	for _, tt := range tests {
		if got := Format(tt.cmd); got != tt.want {
			t.Fatalf("Format(%#v): expected %q, got %q", tt.cmd, tt.want, got)
		}
	}
}

// Tickers spelled like periods must survive Format and Parse.
func TestFormatKeepsTickersThatLookLikePeriods(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Compare{Tickers: []string{"6M"}, Period: "1Y"}, "COMP 6M, 1Y"},
		{Compare{Tickers: []string{"AAPL"}, Benchmark: "1M", Period: "5Y"}, "COMP AAPL 5Y 1M"},
		{Compare{Tickers: []string{"AAPL"}, Benchmark: "SPY", Period: "1Y"}, "COMP AAPL SPY 1Y"},
	}
	for _, tt := range tests {
		got := Format(tt.cmd)
		if got != tt.want {
			t.Fatalf("Format(%#v): expected %q, got %q", tt.cmd, tt.want, got)
		}
		if back := Parse(got, ""); !reflect.DeepEqual(back, tt.cmd) {
			t.Fatalf("Parse(%q): expected %#v, got %#v", got, tt.cmd, back)
		}
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		cmd  Command
		want []string
	}{
		{Chart{Ticker: "AAPL", Period: "1Y"}, []string{"AAPL"}},
		{Compare{Tickers: []string{"AAPL", "SPY"}, Benchmark: "SPY"}, []string{"AAPL", "SPY"}},
		{WatchlistAdd{Ticker: "MSFT"}, []string{"MSFT"}},
		{Alerts{}, nil},
		{MarketNews{Category: "GENERAL"}, nil},
		{Crypto{Symbol: "BTC-USD"}, nil},
	}
	for _, tt := range tests {
		if got := Symbols(tt.cmd); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Symbols(%#v): expected %v, got %v", tt.cmd, tt.want, got)
		}
	}
}
