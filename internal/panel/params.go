package panel

import (
	"reflect"
	"slices"
)

// Params is the optional-field bag for panel views. Which fields are
// meaningful depends on the panel type; see Restrict.
type Params struct {
	Period             string   `yaml:"period,omitempty"`
	FormType           string   `yaml:"form_type,omitempty"`
	NewsCategory       string   `yaml:"news_category,omitempty"`
	SeriesID           string   `yaml:"series_id,omitempty"`
	ScreenerTemplate   string   `yaml:"screener_template,omitempty"`
	PortfolioID        string   `yaml:"portfolio_id,omitempty"`
	Tickers            []string `yaml:"tickers,omitempty"`
	Benchmark          string   `yaml:"benchmark,omitempty"`
	EconomicImportance string   `yaml:"economic_importance,omitempty"`
	EarningsDays       int      `yaml:"earnings_days,omitempty"`
	HeatmapUniverse    string   `yaml:"heatmap_universe,omitempty"`
	CryptoSymbol       string   `yaml:"crypto_symbol,omitempty"`
	AlertTicker        string   `yaml:"alert_ticker,omitempty"`
	HelpTopic          string   `yaml:"help_topic,omitempty"`
}

type field uint16

const (
	fieldPeriod field = 1 << iota
	fieldFormType
	fieldNewsCategory
	fieldSeriesID
	fieldScreenerTemplate
	fieldPortfolioID
	fieldTickers
	fieldBenchmark
	fieldEconomicImportance
	fieldEarningsDays
	fieldHeatmapUniverse
	fieldCryptoSymbol
	fieldAlertTicker
	fieldHelpTopic
)

var typeFields = map[Type]field{
	TypeEmpty:            0,
	TypeOverview:         0,
	TypeChart:            fieldPeriod,
	TypeFundamentals:     0,
	TypeFilings:          fieldFormType,
	TypeNews:             0,
	TypeOptions:          0,
	TypeSentiment:        0,
	TypeMarketNews:       fieldNewsCategory,
	TypeMacro:            fieldSeriesID,
	TypeYieldCurve:       0,
	TypeEconomicCalendar: fieldEconomicImportance,
	TypeEarningsCalendar: fieldEarningsDays,
	TypeHeatmap:          fieldHeatmapUniverse,
	TypeCrypto:           fieldCryptoSymbol,
	TypeScreener:         fieldScreenerTemplate,
	TypePortfolio:        fieldPortfolioID,
	TypeCorrelation:      fieldTickers | fieldPeriod,
	TypeCompare:          fieldTickers | fieldPeriod | fieldBenchmark,
	TypeWatchlist:        0,
	TypeAlerts:           fieldAlertTicker,
	TypeLaunchpad:        0,
	TypeHelp:             fieldHelpTopic,
	TypeStatus:           0,
}

// Restrict drops every field that is not meaningful for t.
func (p Params) Restrict(t Type) Params {
	allowed := typeFields[t]
	var out Params
	if allowed&fieldPeriod != 0 {
		out.Period = p.Period
	}
	if allowed&fieldFormType != 0 {
		out.FormType = p.FormType
	}
	if allowed&fieldNewsCategory != 0 {
		out.NewsCategory = p.NewsCategory
	}
	if allowed&fieldSeriesID != 0 {
		out.SeriesID = p.SeriesID
	}
	if allowed&fieldScreenerTemplate != 0 {
		out.ScreenerTemplate = p.ScreenerTemplate
	}
	if allowed&fieldPortfolioID != 0 {
		out.PortfolioID = p.PortfolioID
	}
	if allowed&fieldTickers != 0 {
		out.Tickers = slices.Clone(p.Tickers)
	}
	if allowed&fieldBenchmark != 0 {
		out.Benchmark = p.Benchmark
	}
	if allowed&fieldEconomicImportance != 0 {
		out.EconomicImportance = p.EconomicImportance
	}
	if allowed&fieldEarningsDays != 0 {
		out.EarningsDays = p.EarningsDays
	}
	if allowed&fieldHeatmapUniverse != 0 {
		out.HeatmapUniverse = p.HeatmapUniverse
	}
	if allowed&fieldCryptoSymbol != 0 {
		out.CryptoSymbol = p.CryptoSymbol
	}
	if allowed&fieldAlertTicker != 0 {
		out.AlertTicker = p.AlertTicker
	}
	if allowed&fieldHelpTopic != 0 {
		out.HelpTopic = p.HelpTopic
	}
	return out
}

// Merge overlays the set fields of partial onto p. Zero values in partial
// leave the existing value alone.
func (p Params) Merge(partial Params) Params {
	out := p.clone()
	if partial.Period != "" {
		out.Period = partial.Period
	}
	if partial.FormType != "" {
		out.FormType = partial.FormType
	}
	if partial.NewsCategory != "" {
		out.NewsCategory = partial.NewsCategory
	}
	if partial.SeriesID != "" {
		out.SeriesID = partial.SeriesID
	}
	if partial.ScreenerTemplate != "" {
		out.ScreenerTemplate = partial.ScreenerTemplate
	}
	if partial.PortfolioID != "" {
		out.PortfolioID = partial.PortfolioID
	}
	if partial.Tickers != nil {
		out.Tickers = slices.Clone(partial.Tickers)
	}
	if partial.Benchmark != "" {
		out.Benchmark = partial.Benchmark
	}
	if partial.EconomicImportance != "" {
		out.EconomicImportance = partial.EconomicImportance
	}
	if partial.EarningsDays != 0 {
		out.EarningsDays = partial.EarningsDays
	}
	if partial.HeatmapUniverse != "" {
		out.HeatmapUniverse = partial.HeatmapUniverse
	}
	if partial.CryptoSymbol != "" {
		out.CryptoSymbol = partial.CryptoSymbol
	}
	if partial.AlertTicker != "" {
		out.AlertTicker = partial.AlertTicker
	}
	if partial.HelpTopic != "" {
		out.HelpTopic = partial.HelpTopic
	}
	return out
}

// IsZero reports whether no field is set.
func (p Params) IsZero() bool {
	return p.Restrict(TypeEmpty).Equal(p)
}

func (p Params) Equal(o Params) bool {
	a, b := p, o
	a.Tickers, b.Tickers = nil, nil
	return reflect.DeepEqual(a, b) && slices.Equal(p.Tickers, o.Tickers)
}

func (p Params) clone() Params {
	out := p
	out.Tickers = slices.Clone(p.Tickers)
	return out
}
