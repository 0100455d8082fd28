package calculator

import (
	"errors"
	"findash/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

const tradingDaysPerYear = 252

var (
	errNotEnoughObservations = errors.New("not enough observations")
	errUndefinedReturn       = errors.New("value is not positive on a prior session")
)

// CalculatePortfolioMetrics values the holdings on every date of the
// normalized price matrix and summarizes the result per asset class.
// Returns and volatilities that cannot be computed are left nil and the
// record is flagged as partial; missing instruments are an error.
func CalculatePortfolioMetrics(
	holdings domain.Holdings,
	prices domain.PriceMatrix,
	period domain.Period,
	currency string,
) (*domain.PortfolioMetrics, error) {
	n := prices.Len()
	if n == 0 {
		return nil, domain.NewComputationError("", "normalized price matrix has no dates")
	}

	cryptoSeries, err := valueSeries(holdings.Positions(domain.AssetClassCrypto), prices)
	if err != nil {
		return nil, fmt.Errorf("failed to value crypto holdings: %w", err)
	}
	stockSeries, err := valueSeries(holdings.Positions(domain.AssetClassStock), prices)
	if err != nil {
		return nil, fmt.Errorf("failed to value stock holdings: %w", err)
	}
	totalSeries := make([]float64, n)
	floats.AddTo(totalSeries, cryptoSeries, stockSeries)

	out := &domain.PortfolioMetrics{
		AsOfDate: prices.Dates[n-1],
		Period:   period,
		Currency: currency,
		TimeSeries: domain.PortfolioTimeSeries{
			Dates:  append(prices.Dates[:0:0], prices.Dates...),
			Crypto: cryptoSeries,
			Stock:  stockSeries,
			Total:  totalSeries,
		},
	}

	if out.CryptoValue, err = truncate(cryptoSeries[n-1]); err != nil {
		return nil, err
	}
	if out.StockValue, err = truncate(stockSeries[n-1]); err != nil {
		return nil, err
	}
	if out.TotalValue, err = truncate(totalSeries[n-1]); err != nil {
		return nil, err
	}

	crypto := summarize("crypto", cryptoSeries)
	stock := summarize("stock", stockSeries)
	total := summarize("total", totalSeries)

	out.CryptoReturn, out.CryptoVolatility = crypto.latestReturn, crypto.volatility
	out.StockReturn, out.StockVolatility = stock.latestReturn, stock.volatility
	out.TotalReturn = total.latestReturn

	// total volatility is not part of the record, so its warning is dropped
	out.Warnings = append(out.Warnings, crypto.warnings...)
	out.Warnings = append(out.Warnings, stock.warnings...)
	if total.latestReturn == nil {
		out.Warnings = append(out.Warnings, total.warnings[0])
	}
	out.Partial = len(out.Warnings) > 0

	return out, nil
}

// valueSeries sums amount * price over the positions on every date.
func valueSeries(positions []domain.Position, prices domain.PriceMatrix) ([]float64, error) {
	out := make([]float64, prices.Len())
	for _, p := range positions {
		column, ok := prices.Column(p.Symbol)
		if !ok {
			return nil, domain.NewComputationError(p.Symbol, "instrument missing from normalized prices")
		}
		floats.AddScaled(out, p.Amount.InexactFloat64(), column)
	}
	return out, nil
}

type seriesSummary struct {
	latestReturn *float64
	volatility   *float64
	warnings     []string
}

func summarize(name string, series []float64) seriesSummary {
	out := seriesSummary{}

	returns, err := CalculateReturns(series)
	if err != nil {
		out.warnings = append(out.warnings, fmt.Sprintf("%s return omitted: %v", name, err))
		out.warnings = append(out.warnings, fmt.Sprintf("%s volatility omitted: %v", name, err))
		return out
	}
	latest := returns[len(returns)-1]
	out.latestReturn = &latest

	vol, err := AnnualizedVolatility(returns)
	if err != nil {
		out.warnings = append(out.warnings, fmt.Sprintf("%s volatility omitted: %v", name, err))
		return out
	}
	out.volatility = &vol

	return out
}

// CalculateReturns returns the session-over-session simple returns
// r[t] = v[t]/v[t-1] - 1 for t = 1..n-1.
func CalculateReturns(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need 2 values, got %d", errNotEnoughObservations, len(values))
	}
	returns := make([]float64, 0, len(values)-1)
	for t := 1; t < len(values); t++ {
		prev := values[t-1]
		if !(prev > 0) {
			return nil, errUndefinedReturn
		}
		returns = append(returns, values[t]/prev-1)
	}
	return returns, nil
}

// AnnualizedVolatility is the sample standard deviation of per-session
// returns scaled by sqrt(252).
func AnnualizedVolatility(returns []float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: need 2 returns, got %d", errNotEnoughObservations, len(returns))
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	return stdev * math.Sqrt(tradingDaysPerYear), nil
}

// truncate drops the fractional currency units.
func truncate(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewComputationError("", "valuation is not a finite number")
	}
	return decimal.NewFromFloat(v).IntPart(), nil
}
