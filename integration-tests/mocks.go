package integration_tests

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"findash/internal/domain"
	"findash/internal/repository"
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

//go:embed sample_prices.csv
var samplePricesCsv []byte

//go:embed holdings.json
var SampleHoldingsJson []byte

type priceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

// NewMockMarketDataRepositoryForTests serves every provider call from
// the bundled fixtures so the pipeline can run without network access.
// FX rows are keyed by pair code (USDSEK). The period is ignored; the
// fixtures cover one fixed week.
func NewMockMarketDataRepositoryForTests() (repository.MarketDataRepository, error) {
	rows := []priceRow{}
	if err := gocsv.UnmarshalBytes(samplePricesCsv, &rows); err != nil {
		return nil, fmt.Errorf("failed to read price fixtures: %w", err)
	}

	prices := map[string]map[time.Time]float64{}
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fixture date %q: %w", row.Date, err)
		}
		if _, ok := prices[row.Symbol]; !ok {
			prices[row.Symbol] = map[time.Time]float64{}
		}
		prices[row.Symbol][date] = row.Price
	}

	return mockMarketDataForTestsHandler{prices: prices}, nil
}

type mockMarketDataForTestsHandler struct {
	prices map[string]map[time.Time]float64
}

func (m mockMarketDataForTestsHandler) columns(op string, keys []string) (domain.SeriesMatrix, error) {
	columns := map[string]map[time.Time]float64{}
	for _, key := range keys {
		series, ok := m.prices[key]
		if !ok {
			return domain.SeriesMatrix{}, domain.NewDataProviderError("fixtures", op, fmt.Errorf("no prices returned for %s", key))
		}
		columns[key] = series
	}
	return domain.NewSeriesMatrixFromColumns(columns), nil
}

func (m mockMarketDataForTestsHandler) FetchHistoricalSeries(ctx context.Context, symbols []string, period domain.Period) (*domain.PriceMatrix, error) {
	series, err := m.columns("historical series", symbols)
	if err != nil {
		return nil, err
	}
	return &domain.PriceMatrix{SeriesMatrix: series}, nil
}

func (m mockMarketDataForTestsHandler) FetchFxRates(ctx context.Context, pairs []domain.FxPair, period domain.Period) (*domain.FxMatrix, error) {
	codes := []string{}
	for _, p := range pairs {
		if !p.IsTrivial() {
			codes = append(codes, p.Code())
		}
	}
	series, err := m.columns("fx rates", codes)
	if err != nil {
		return nil, err
	}
	return &domain.FxMatrix{SeriesMatrix: series}, nil
}

func (m mockMarketDataForTestsHandler) FetchIndexSnapshot(ctx context.Context, symbols []string) (map[string]domain.IndexQuote, error) {
	quotes := map[string]domain.IndexQuote{
		"^VIX":  {Symbol: "^VIX", Price: 14.41, Open: 14.2, FiftyTwoWeekHigh: 21.71},
		"^OMX":  {Symbol: "^OMX", Price: 2432.5, Open: 2420, FiftyTwoWeekHigh: 2445.1},
		"^GSPC": {Symbol: "^GSPC", Price: 5117.09, Open: 5150.48, FiftyTwoWeekHigh: 5189.26},
	}
	out := map[string]domain.IndexQuote{}
	for _, s := range symbols {
		q, ok := quotes[s]
		if !ok {
			return nil, domain.NewDataProviderError("fixtures", "index snapshot", fmt.Errorf("no quote returned for %s", s))
		}
		out[s] = q
	}
	return out, nil
}

func (m mockMarketDataForTestsHandler) FetchIpoCalendar(ctx context.Context, from, to time.Time) ([]domain.IpoListing, error) {
	if to.Before(from) {
		return nil, domain.NewConfigError("ipo window", "to is before from")
	}
	return []domain.IpoListing{
		{Date: from.Format(time.DateOnly), Name: "Reddit Inc", Symbol: "RDDT", Exchange: "NYSE"},
		{Date: to.Format(time.DateOnly), Name: "Astera Labs Inc", Symbol: "ALAB", Exchange: "NASDAQ Global Select"},
	}, nil
}

func (m mockMarketDataForTestsHandler) FetchTickerSnapshot(ctx context.Context) ([]domain.TickerChange, error) {
	return []domain.TickerChange{
		{Symbol: "BTCUSDT", PriceChangePercent: -2.1},
		{Symbol: "ETHUSDT", PriceChangePercent: -4.6},
		{Symbol: "DOGEUSDT", PriceChangePercent: 12.5},
		{Symbol: "SOLUSDT", PriceChangePercent: 7.25},
		{Symbol: "PEPEUSDT", PriceChangePercent: 31.02},
	}, nil
}

// NewMockHoldingsRepositoryForTests returns the bundled holdings document
// whatever path it is asked for.
func NewMockHoldingsRepositoryForTests() repository.HoldingsRepository {
	return mockHoldingsForTestsHandler{}
}

type mockHoldingsForTestsHandler struct{}

func (m mockHoldingsForTestsHandler) Load(path string) (*domain.Holdings, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.ConfigError{Source: "holdings", Err: errors.New("no path")}
	}
	holdings, err := repository.ParseHoldings(bytes.NewReader(SampleHoldingsJson))
	if err != nil {
		return nil, &domain.ConfigError{Source: path, Err: err}
	}
	return holdings, nil
}
