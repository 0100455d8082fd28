package domain

import "time"

// IndexQuote is the subset of a live quote the dashboard uses.
type IndexQuote struct {
	Symbol           string
	Price            float64
	Open             float64
	FiftyTwoWeekHigh float64
}

// IndexTicker names a broad index for display.
type IndexTicker struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

// VolatilityIndexLevel is reported as a raw level, not a change.
type VolatilityIndexLevel struct {
	Symbol           string  `json:"symbol"`
	Level            float64 `json:"level"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
}

// IndexChange is the intraday change of a broad index as a fraction.
type IndexChange struct {
	Label  string  `json:"label"`
	Symbol string  `json:"symbol"`
	Change float64 `json:"change"`
}

type IndexMetrics struct {
	VolatilityIndex VolatilityIndexLevel `json:"volatilityIndex"`
	Indices         []IndexChange        `json:"indices"`
}

type IpoListing struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// IpoCalendar is the list of upcoming listings between From and To,
// both inclusive.
type IpoCalendar struct {
	From     time.Time    `json:"from"`
	To       time.Time    `json:"to"`
	Listings []IpoListing `json:"listings"`
}

// TickerChange is a provider's 24 hour change, in percent points as
// the provider reports it (1.5 means 1.5%).
type TickerChange struct {
	Symbol             string
	PriceChangePercent float64
}

// CoinChange is a ranked pair; Change is a fraction (0.015 is 1.5%).
type CoinChange struct {
	Symbol string  `json:"symbol"`
	Change float64 `json:"change"`
}

type TrendingCoins struct {
	Top   int          `json:"top"`
	Coins []CoinChange `json:"coins"`
}

// MarketSnapshot carries each category independently; a nil field
// means that sub-fetch failed and Diagnostics says why.
type MarketSnapshot struct {
	Index       *IndexMetrics  `json:"index,omitempty"`
	Ipos        *IpoCalendar   `json:"ipos,omitempty"`
	Coins       *TrendingCoins `json:"coins,omitempty"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}
