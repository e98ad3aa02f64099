package catalog

import "github.com/jask/jaskterm/internal/panel"

// Function names. They double as command kinds.
const (
	NameOverview         = "overview"
	NameChart            = "chart"
	NameFundamentals     = "fundamentals"
	NameFilings          = "filings"
	NameNews             = "news"
	NameOptions          = "options"
	NameSentiment        = "sentiment"
	NameMarketNews       = "market_news"
	NameMacro            = "macro"
	NameYieldCurve       = "yield_curve"
	NameEconomicCalendar = "economic_calendar"
	NameEarningsCalendar = "earnings_calendar"
	NameHeatmap          = "heatmap"
	NameCrypto           = "crypto"
	NameScreener         = "screener"
	NamePortfolio        = "portfolio"
	NameCorrelation      = "correlation"
	NameCompare          = "compare"
	NameWatchlist        = "watchlist"
	NameAlerts           = "alerts"
	NameLaunchpad        = "launchpad"
	NameHelp             = "help"
	NameStatus           = "status"
)

// DefaultMnemonic opens when a bare subject is typed.
const DefaultMnemonic = "DES"

var (
	Periods          = []string{"1M", "3M", "6M", "1Y", "2Y", "5Y", "MAX"}
	FormTypes        = []string{"10-K", "10-Q", "8-K", "ALL"}
	NewsCategories   = []string{"GENERAL", "FOREX", "CRYPTO", "MERGER"}
	MacroSeries      = []string{"CPI", "CPIYOY", "PCE", "GDP", "GDPC1", "UNRATE", "PAYEMS", "ICSA", "FEDFUNDS", "DFF", "DGS1MO", "DGS3MO", "DGS6MO", "DGS1", "DGS2", "DGS5", "DGS10", "DGS30", "T10Y2Y", "T10Y3M", "M2SL", "CSUSHPINSA", "HOUST"}
	ScreenTemplates  = []string{"VALUE", "GROWTH", "DIVIDEND", "QUALITY", "LARGE_CAP"}
	Importances      = []string{"ALL", "HIGH", "MEDIUM", "LOW"}
	HeatmapUniverses = []string{"SP500", "NDX", "DJI"}
	WatchlistActions = []string{"ADD", "REMOVE", DefaultWatchlistView}
	LayoutPresets    = []string{"1X1", "2X1", "1X2", "2X2"}
)

const (
	DefaultPeriod         = "1Y"
	DefaultFormType       = "ALL"
	DefaultNewsCategory   = "GENERAL"
	DefaultImportance     = "ALL"
	DefaultEarningsDays   = "7"
	DefaultHeatmap        = "SP500"
	DefaultCryptoSymbol   = "BTC-USD"
	DefaultWatchlistView  = "VIEW"
	MaxCompareTickers     = 5
	MinCorrelationTickers = 2
	MaxCorrelationTickers = 20
)

func periodParam() Param {
	return Param{Name: "period", Kind: KindEnum, Choices: Periods, Default: DefaultPeriod}
}

func defaultEntries() []Entry {
	return []Entry{
		{
			Mnemonic: "DES", Aliases: []string{"OV", "OVERVIEW"}, Name: NameOverview,
			Title: "Security overview", Description: "Description, key stats and quote for a subject",
			RequiresSubject: true, Panel: panel.TypeOverview, Example: "AAPL DES",
		},
		{
			Mnemonic: "GP", Aliases: []string{"G", "CHART"}, Name: NameChart,
			Title: "Price chart", Description: "Historical price graph over a period",
			RequiresSubject: true, Params: []Param{periodParam()},
			Panel: panel.TypeChart, Example: "AAPL GP 6M",
		},
		{
			Mnemonic: "FA", Aliases: []string{"FUND"}, Name: NameFundamentals,
			Title: "Fundamentals", Description: "Financial statements and ratios",
			RequiresSubject: true, Panel: panel.TypeFundamentals, Example: "MSFT FA",
		},
		{
			Mnemonic: "CF", Aliases: []string{"FIL", "FILINGS"}, Name: NameFilings,
			Title: "Company filings", Description: "Regulatory filings, optionally by form",
			RequiresSubject: true,
			Params:          []Param{{Name: "form", Kind: KindEnum, Choices: FormTypes, Default: DefaultFormType}},
			Panel:           panel.TypeFilings, Example: "AAPL CF 10-K",
		},
		{
			Mnemonic: "CN", Aliases: []string{"NEWS"}, Name: NameNews,
			Title: "Company news", Description: "Headlines for a subject",
			RequiresSubject: true, Panel: panel.TypeNews, Example: "TSLA CN",
		},
		{
			Mnemonic: "OMON", Aliases: []string{"OPT"}, Name: NameOptions,
			Title: "Option monitor", Description: "Option chain for a subject",
			RequiresSubject: true, Panel: panel.TypeOptions, Example: "SPY OMON",
		},
		{
			Mnemonic: "SENT", Aliases: []string{"SENTIMENT"}, Name: NameSentiment,
			Title: "Sentiment", Description: "News and social sentiment for a subject",
			RequiresSubject: true, Panel: panel.TypeSentiment, Example: "NVDA SENT",
		},
		{
			Mnemonic: "N", Aliases: []string{"TOP"}, Name: NameMarketNews,
			Title: "Market news", Description: "Top headlines by category",
			Params: []Param{{Name: "category", Kind: KindEnum, Choices: NewsCategories, Default: DefaultNewsCategory}},
			Panel:  panel.TypeMarketNews, Example: "N CRYPTO",
		},
		{
			Mnemonic: "ECST", Aliases: []string{"MACRO"}, Name: NameMacro,
			Title: "Macro series", Description: "Economic time series (CPI, GDP, UNRATE, ...)",
			Params: []Param{{Name: "series", Kind: KindEnum, Choices: MacroSeries}},
			Panel:  panel.TypeMacro, Example: "ECST CPI",
		},
		{
			Mnemonic: "YCRV", Aliases: []string{"YC"}, Name: NameYieldCurve,
			Title: "Yield curve", Description: "Treasury yield curve",
			Panel: panel.TypeYieldCurve, Example: "YCRV",
		},
		{
			Mnemonic: "ECO", Aliases: []string{"ECAL"}, Name: NameEconomicCalendar,
			Title: "Economic calendar", Description: "Upcoming releases by importance",
			Params: []Param{{Name: "importance", Kind: KindEnum, Choices: Importances, Default: DefaultImportance}},
			Panel:  panel.TypeEconomicCalendar, Example: "ECO HIGH",
		},
		{
			Mnemonic: "EVTS", Aliases: []string{"ERN", "EARN"}, Name: NameEarningsCalendar,
			Title: "Earnings calendar", Description: "Earnings dates over the next N days",
			Params: []Param{{Name: "days", Kind: KindNumber, Default: DefaultEarningsDays, Min: 1, Max: 90}},
			Panel:  panel.TypeEarningsCalendar, Example: "EVTS 14",
		},
		{
			Mnemonic: "HMAP", Aliases: []string{"HEAT", "MAP"}, Name: NameHeatmap,
			Title: "Market heatmap", Description: "Sector heatmap for an index universe",
			Params: []Param{{Name: "universe", Kind: KindEnum, Choices: HeatmapUniverses, Default: DefaultHeatmap}},
			Panel:  panel.TypeHeatmap, Example: "HMAP NDX",
		},
		{
			Mnemonic: "XBT", Aliases: []string{"CRYPTO"}, Name: NameCrypto,
			Title: "Crypto monitor", Description: "Quote and chart for a crypto pair",
			Params: []Param{{Name: "pair", Kind: KindSymbol, Default: DefaultCryptoSymbol, SubjectSlot: true}},
			Panel:  panel.TypeCrypto, Example: "XBT ETH-USD",
		},
		{
			Mnemonic: "EQS", Aliases: []string{"SCREEN"}, Name: NameScreener,
			Title: "Equity screener", Description: "Run a saved screen template",
			Params: []Param{{Name: "template", Kind: KindEnum, Choices: ScreenTemplates}},
			Panel:  panel.TypeScreener, Example: "EQS VALUE",
		},
		{
			Mnemonic: "PORT", Aliases: []string{"PRTU"}, Name: NamePortfolio,
			Title: "Portfolio", Description: "Holdings and analytics for a portfolio",
			Params: []Param{{Name: "id", Kind: KindString}},
			Panel:  panel.TypePortfolio, Example: "PORT core",
		},
		{
			Mnemonic: "CORR", Name: NameCorrelation,
			Title: "Correlation matrix", Description: "Pairwise return correlation",
			Params: []Param{
				{Name: "tickers", Kind: KindList, Required: true, Noun: "ticker", MinItems: MinCorrelationTickers, MaxItems: MaxCorrelationTickers, SubjectSlot: true},
				periodParam(),
			},
			Panel: panel.TypeCorrelation, Example: "CORR AAPL,MSFT",
		},
		{
			Mnemonic: "COMP", Aliases: []string{"CMP"}, Name: NameCompare,
			Title: "Comparative returns", Description: "Relative performance against an optional benchmark",
			Params: []Param{
				{Name: "tickers", Kind: KindList, Required: true, Noun: "ticker", MinItems: 1, MaxItems: MaxCompareTickers, SubjectSlot: true},
				{Name: "benchmark", Kind: KindSymbol},
				periodParam(),
			},
			Panel: panel.TypeCompare, Example: "COMP AAPL,MSFT SPY 6M",
		},
		{
			Mnemonic: "WL", Aliases: []string{"WATCH"}, Name: NameWatchlist,
			Title: "Watchlist", Description: "View the watchlist, or ADD/REMOVE a subject",
			Params: []Param{
				{Name: "action", Kind: KindEnum, Choices: WatchlistActions, Default: DefaultWatchlistView},
				{Name: "ticker", Kind: KindSymbol, SubjectSlot: true},
			},
			Panel: panel.TypeWatchlist, Example: "WL ADD AAPL",
		},
		{
			Mnemonic: "ALRT", Aliases: []string{"ALERTS"}, Name: NameAlerts,
			Title: "Alerts", Description: "Price alerts, optionally for one subject",
			Params: []Param{{Name: "ticker", Kind: KindSymbol, SubjectSlot: true}},
			Panel:  panel.TypeAlerts, Example: "ALRT",
		},
		{
			Mnemonic: "LAUNCH", Aliases: []string{"LP"}, Name: NameLaunchpad,
			Title: "Launchpad", Description: "Workspace overview, or switch layout",
			Params: []Param{{Name: "layout", Kind: KindEnum, Choices: LayoutPresets}},
			Panel:  panel.TypeLaunchpad, Example: "LAUNCH 2X2",
		},
		{
			Mnemonic: "HELP", Aliases: []string{"H", "?"}, Name: NameHelp,
			Title: "Help", Description: "Function list, or help for one mnemonic",
			Params: []Param{{Name: "topic", Kind: KindString}},
			Panel:  panel.TypeHelp, Example: "HELP GP",
		},
		{
			Mnemonic: "STATUS", Aliases: []string{"SYS"}, Name: NameStatus,
			Title: "System status", Description: "Data source and workspace status",
			Panel: panel.TypeStatus, Example: "STATUS",
		},
	}
}
