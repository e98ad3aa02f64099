package command

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jask/jaskterm/internal/catalog"
)

// Parser binds input lines against a function catalog.
type Parser struct {
	cat *catalog.Catalog
}

func NewParser(cat *catalog.Catalog) *Parser {
	return &Parser{cat: cat}
}

var defaultParser = NewParser(catalog.Default())

// Parse interprets input against the built-in catalog. contextSubject is the
// ticker of the panel the command is aimed at; "" means none.
func Parse(input, contextSubject string) Command {
	return defaultParser.Parse(input, contextSubject)
}

// Parse never panics and never returns nil.
func (p *Parser) Parse(input, contextSubject string) Command {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return fail(errEmpty())
	}
	ctx := strings.ToUpper(strings.TrimSpace(contextSubject))
	if !catalog.ValidSymbol(ctx) {
		ctx = ""
	}

	if e, ok := p.cat.Lookup(tokens[0]); ok {
		return p.build(e, "", tokens[1:], ctx)
	}

	subject := strings.ToUpper(tokens[0])
	if !catalog.ValidSymbol(subject) {
		return fail(errUnknown(tokens[0], p.cat.Suggest(tokens[0])))
	}
	if len(tokens) > 1 {
		if e, ok := p.cat.Lookup(tokens[1]); ok {
			return p.build(e, subject, tokens[2:], ctx)
		}
	}
	return Overview{Ticker: subject}
}

// binding collects validated argument values keyed by parameter name.
type binding struct {
	values  map[string]string
	lists   map[string][]string
	numbers map[string]int
}

func (p *Parser) build(e catalog.Entry, subject string, args []string, ctx string) Command {
	if e.RequiresSubject {
		if subject == "" {
			subject = ctx
		}
		if subject == "" {
			return fail(errMissingSubject(fmt.Sprintf("%s requires a subject", e.Mnemonic)))
		}
	}

	b := binding{values: map[string]string{}, lists: map[string][]string{}, numbers: map[string]int{}}
	bound := make([]bool, len(e.Params))

	if subject != "" && !e.RequiresSubject {
		i := slices.IndexFunc(e.Params, func(par catalog.Param) bool { return par.SubjectSlot })
		if i < 0 {
			return fail(errInvalid("subject", "%s does not take a subject", e.Mnemonic))
		}
		par := e.Params[i]
		if par.Kind == catalog.KindList {
			// The list still accepts an argument; the subject goes first.
			b.lists[par.Name] = []string{subject}
		} else {
			b.values[par.Name] = subject
			bound[i] = true
		}
	}

	for _, tok := range args {
		i := pick(e.Params, bound, tok)
		if i < 0 {
			return fail(reject(e.Params, bound, tok))
		}
		bound[i] = true
		par := e.Params[i]
		switch par.Kind {
		case catalog.KindList:
			b.lists[par.Name] = append(b.lists[par.Name], splitList(tok)...)
		case catalog.KindEnum:
			b.values[par.Name] = par.Choice(tok)
		case catalog.KindSymbol:
			b.values[par.Name] = strings.ToUpper(tok)
		default:
			b.values[par.Name] = tok
		}
	}

	for _, par := range e.Params {
		switch par.Kind {
		case catalog.KindList:
			items := dedupe(b.lists[par.Name])
			if len(items) < par.MinItems || (par.MaxItems > 0 && len(items) > par.MaxItems) {
				return fail(errArity(e.Name, par.Name, par.Noun, len(items), par.MinItems, par.MaxItems))
			}
			b.lists[par.Name] = items
		case catalog.KindNumber:
			raw := b.values[par.Name]
			if raw == "" {
				raw = par.Default
			}
			n, err := strconv.Atoi(raw)
			if err != nil || n < par.Min || n > par.Max {
				return fail(errInvalid(par.Name, "%s must be between %d and %d", par.Name, par.Min, par.Max))
			}
			b.numbers[par.Name] = n
		default:
			if b.values[par.Name] != "" {
				continue
			}
			if par.Required {
				return fail(errInvalid(par.Name, "%s is required", par.Name))
			}
			b.values[par.Name] = par.Default
		}
	}

	return p.assemble(e, subject, ctx, b)
}

// pick returns the parameter tok binds to: the first unbound enum that
// accepts it, else the first unbound parameter of any other kind.
func pick(params []catalog.Param, bound []bool, tok string) int {
	for i, par := range params {
		if !bound[i] && par.Kind == catalog.KindEnum && par.Accepts(tok) {
			return i
		}
	}
	for i, par := range params {
		if !bound[i] && par.Kind != catalog.KindEnum && par.Accepts(tok) {
			return i
		}
	}
	return -1
}

// reject explains why tok fits nowhere, blaming the first open parameter.
func reject(params []catalog.Param, bound []bool, tok string) *ParseError {
	i := slices.Index(bound, false)
	if i < 0 {
		return errInvalid("arguments", "unexpected argument %q", tok)
	}
	par := params[i]
	switch par.Kind {
	case catalog.KindEnum:
		return errInvalid(par.Name, "invalid %s %q, expected one of %s", par.Name, tok, strings.Join(par.Choices, ", "))
	case catalog.KindList:
		for _, part := range strings.Split(tok, ",") {
			part = strings.TrimSpace(part)
			if part != "" && !catalog.ValidSymbol(strings.ToUpper(part)) {
				return errInvalid(par.Name, "invalid %s %q", par.Noun, part)
			}
		}
		return errInvalid(par.Name, "invalid %s %q", par.Name, tok)
	case catalog.KindNumber:
		return errInvalid(par.Name, "%s must be a whole number, got %q", par.Name, tok)
	}
	return errInvalid(par.Name, "invalid %s %q", par.Name, tok)
}

func splitList(tok string) []string {
	var out []string
	for _, part := range strings.Split(tok, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Parser) assemble(e catalog.Entry, subject, ctx string, b binding) Command {
	v := b.values
	switch e.Name {
	case catalog.NameOverview:
		return Overview{Ticker: subject}
	case catalog.NameChart:
		return Chart{Ticker: subject, Period: v["period"]}
	case catalog.NameFundamentals:
		return Fundamentals{Ticker: subject}
	case catalog.NameFilings:
		return Filings{Ticker: subject, FormType: v["form"]}
	case catalog.NameNews:
		return News{Ticker: subject}
	case catalog.NameOptions:
		return Options{Ticker: subject}
	case catalog.NameSentiment:
		return Sentiment{Ticker: subject}
	case catalog.NameMarketNews:
		return MarketNews{Category: v["category"]}
	case catalog.NameMacro:
		return Macro{SeriesID: v["series"]}
	case catalog.NameYieldCurve:
		return YieldCurve{}
	case catalog.NameEconomicCalendar:
		return EconomicCalendar{Importance: v["importance"]}
	case catalog.NameEarningsCalendar:
		return EarningsCalendar{Days: b.numbers["days"]}
	case catalog.NameHeatmap:
		return Heatmap{Universe: v["universe"]}
	case catalog.NameCrypto:
		return Crypto{Symbol: v["pair"]}
	case catalog.NameScreener:
		return Screener{Template: v["template"]}
	case catalog.NamePortfolio:
		return Portfolio{ID: v["id"]}
	case catalog.NameCorrelation:
		return Correlation{Tickers: b.lists["tickers"], Period: v["period"]}
	case catalog.NameCompare:
		return Compare{Tickers: b.lists["tickers"], Benchmark: v["benchmark"], Period: v["period"]}
	case catalog.NameWatchlist:
		return watchlist(e, v["action"], v["ticker"], ctx)
	case catalog.NameAlerts:
		return Alerts{Ticker: v["ticker"]}
	case catalog.NameLaunchpad:
		return Launchpad{Layout: v["layout"]}
	case catalog.NameHelp:
		topic := v["topic"]
		if topic == "" {
			return Help{}
		}
		he, ok := p.cat.Lookup(topic)
		if !ok {
			err := errInvalid("topic", "unknown function %q", topic)
			err.Suggestions = p.cat.Suggest(topic)
			return fail(err)
		}
		return Help{Topic: he.Mnemonic}
	case catalog.NameStatus:
		return Status{}
	}
	return fail(errUnknown(e.Mnemonic, nil))
}

func watchlist(e catalog.Entry, action, ticker, ctx string) Command {
	switch action {
	case "ADD", "REMOVE":
		if ticker == "" {
			ticker = ctx
		}
		if ticker == "" {
			return fail(errMissingSubject("no active subject"))
		}
		if action == "ADD" {
			return WatchlistAdd{Ticker: ticker}
		}
		return WatchlistRemove{Ticker: ticker}
	}
	if ticker != "" {
		return fail(errInvalid("ticker", "%s takes a ticker only with ADD or REMOVE", e.Mnemonic))
	}
	return Watchlist{}
}
