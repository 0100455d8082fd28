package domain

import (
	"encoding/json"
	"time"
)

// PortfolioTimeSeries is the valuation history per asset class. All
// slices have the same length as Dates.
type PortfolioTimeSeries struct {
	Dates  []time.Time `json:"dates"`
	Crypto []float64   `json:"crypto"`
	Stock  []float64   `json:"stock"`
	Total  []float64   `json:"total"`
}

// PortfolioMetrics is the valuation summary handed to the renderer.
// Returns and volatilities are fractions (0.1 is 10%) and are nil when
// there were not enough observations to compute them. Values are whole
// units of the target currency, truncated.
type PortfolioMetrics struct {
	AsOfDate   time.Time           `json:"asOfDate"`
	Period     Period              `json:"period"`
	Currency   string              `json:"currency"`
	TimeSeries PortfolioTimeSeries `json:"timeSeries"`

	CryptoVolatility *float64 `json:"cryptoVolatility,omitempty"`
	StockVolatility  *float64 `json:"stockVolatility,omitempty"`

	CryptoReturn *float64 `json:"cryptoReturn,omitempty"`
	StockReturn  *float64 `json:"stockReturn,omitempty"`
	TotalReturn  *float64 `json:"totalReturn,omitempty"`

	CryptoValue int64 `json:"cryptoValue"`
	StockValue  int64 `json:"stockValue"`
	TotalValue  int64 `json:"totalValue"`

	// Partial is set when some return or volatility field was omitted.
	Partial  bool     `json:"partial"`
	Warnings []string `json:"warnings,omitempty"`
}

// MarshalJSON writes dates as ISO-8601 days.
func (ts PortfolioTimeSeries) MarshalJSON() ([]byte, error) {
	dates := make([]string, len(ts.Dates))
	for i, d := range ts.Dates {
		dates[i] = d.Format(time.DateOnly)
	}
	type alias struct {
		Dates  []string  `json:"dates"`
		Crypto []float64 `json:"crypto"`
		Stock  []float64 `json:"stock"`
		Total  []float64 `json:"total"`
	}
	return json.Marshal(alias{
		Dates:  dates,
		Crypto: ts.Crypto,
		Stock:  ts.Stock,
		Total:  ts.Total,
	})
}
