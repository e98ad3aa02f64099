package service

import (
	"slices"

	"github.com/jask/jaskterm/internal/catalog"
	"github.com/jask/jaskterm/internal/command"
	"github.com/jask/jaskterm/internal/panel"
)

// view maps a command to the panel type and params it opens.
func view(c command.Command) (panel.Type, panel.Params) {
	var p panel.Params
	switch v := c.(type) {
	case command.Chart:
		p.Period = v.Period
	case command.Filings:
		p.FormType = v.FormType
	case command.MarketNews:
		p.NewsCategory = v.Category
	case command.Macro:
		p.SeriesID = v.SeriesID
	case command.EconomicCalendar:
		p.EconomicImportance = v.Importance
	case command.EarningsCalendar:
		p.EarningsDays = v.Days
	case command.Heatmap:
		p.HeatmapUniverse = v.Universe
	case command.Crypto:
		p.CryptoSymbol = v.Symbol
	case command.Screener:
		p.ScreenerTemplate = v.Template
	case command.Portfolio:
		p.PortfolioID = v.ID
	case command.Correlation:
		p.Tickers, p.Period = slices.Clone(v.Tickers), v.Period
	case command.Compare:
		p.Tickers, p.Benchmark, p.Period = slices.Clone(v.Tickers), v.Benchmark, v.Period
	case command.Alerts:
		p.AlertTicker = v.Ticker
	case command.Help:
		p.HelpTopic = v.Topic
	case command.WatchlistAdd, command.WatchlistRemove:
		return panel.TypeWatchlist, p
	}
	e, ok := catalog.Default().ByName(string(c.Kind()))
	if !ok {
		return panel.TypeEmpty, p
	}
	return e.Panel, p
}
