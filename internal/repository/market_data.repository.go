package repository

import (
	"context"
	"errors"
	"findash/internal/domain"
	"findash/internal/logger"
	"findash/pkg/binance"
	"findash/pkg/finnhub"
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	providerYahoo   = "yahoo"
	providerFinnhub = "finnhub"
	providerBinance = "binance"
)

// IpoCalendarClient is the subset of the finnhub client the gateway uses.
type IpoCalendarClient interface {
	GetIpoCalendar(ctx context.Context, from, to time.Time) (*finnhub.IpoCalendarResponse, error)
}

// TickerClient is the subset of the binance client the gateway uses.
type TickerClient interface {
	Get24hrTickers(ctx context.Context) ([]binance.Ticker24hr, error)
}

// MarketDataRepository is the single entry point to every external data
// provider. Each operation stands alone; a failure in one never affects
// another.
type MarketDataRepository interface {
	FetchHistoricalSeries(ctx context.Context, symbols []string, period domain.Period) (*domain.PriceMatrix, error)
	FetchFxRates(ctx context.Context, pairs []domain.FxPair, period domain.Period) (*domain.FxMatrix, error)
	FetchIndexSnapshot(ctx context.Context, symbols []string) (map[string]domain.IndexQuote, error)
	FetchIpoCalendar(ctx context.Context, from, to time.Time) ([]domain.IpoListing, error)
	FetchTickerSnapshot(ctx context.Context) ([]domain.TickerChange, error)
}

type marketDataRepositoryHandler struct {
	YahooRepository YahooRepository
	IpoClient       IpoCalendarClient
	TickerClient    TickerClient
	Now             func() time.Time
}

func NewMarketDataRepository(
	yahooRepository YahooRepository,
	ipoClient IpoCalendarClient,
	tickerClient TickerClient,
) MarketDataRepository {
	return marketDataRepositoryHandler{
		YahooRepository: yahooRepository,
		IpoClient:       ipoClient,
		TickerClient:    tickerClient,
		Now:             time.Now,
	}
}

func (h marketDataRepositoryHandler) FetchHistoricalSeries(ctx context.Context, symbols []string, period domain.Period) (*domain.PriceMatrix, error) {
	if err := period.Validate(); err != nil {
		return nil, &domain.ConfigError{Source: "period", Err: err}
	}
	if len(symbols) == 0 {
		return &domain.PriceMatrix{SeriesMatrix: domain.NewSeriesMatrix(nil)}, nil
	}

	now := h.Now()
	series, err := h.YahooRepository.GetAdjustedCloses(ctx, symbols, period.Start(now), now)
	if err != nil {
		return nil, domain.NewDataProviderError(providerYahoo, "historical series", err)
	}

	logger.FromContext(ctx).Debugw("fetched historical series", "symbols", symbols, "period", period, "sessions", series.Len())

	return &domain.PriceMatrix{SeriesMatrix: series}, nil
}

// FetchFxRates downloads one rate series per pair, keyed by pair code.
// Pairs with base == quote are never requested.
func (h marketDataRepositoryHandler) FetchFxRates(ctx context.Context, pairs []domain.FxPair, period domain.Period) (*domain.FxMatrix, error) {
	if err := period.Validate(); err != nil {
		return nil, &domain.ConfigError{Source: "period", Err: err}
	}

	symbolToCode := map[string]string{}
	symbols := []string{}
	for _, p := range pairs {
		if p.IsTrivial() {
			continue
		}
		symbol := FxSymbol(p)
		if _, ok := symbolToCode[symbol]; ok {
			continue
		}
		symbolToCode[symbol] = p.Code()
		symbols = append(symbols, symbol)
	}
	if len(symbols) == 0 {
		return &domain.FxMatrix{SeriesMatrix: domain.NewSeriesMatrix(nil)}, nil
	}

	now := h.Now()
	series, err := h.YahooRepository.GetAdjustedCloses(ctx, symbols, period.Start(now), now)
	if err != nil {
		return nil, domain.NewDataProviderError(providerYahoo, "fx rates", err)
	}

	out := domain.NewSeriesMatrix(series.Dates)
	for _, symbol := range symbols {
		values, ok := series.Column(symbol)
		if !ok {
			return nil, domain.NewDataProviderError(providerYahoo, "fx rates", fmt.Errorf("no rates returned for %s", symbol))
		}
		if err := out.Set(symbolToCode[symbol], values); err != nil {
			return nil, fmt.Errorf("failed to set fx column %s: %w", symbolToCode[symbol], err)
		}
	}

	return &domain.FxMatrix{SeriesMatrix: out}, nil
}

func (h marketDataRepositoryHandler) FetchIndexSnapshot(ctx context.Context, symbols []string) (map[string]domain.IndexQuote, error) {
	quotes, err := h.YahooRepository.GetQuotes(ctx, symbols)
	if err != nil {
		return nil, domain.NewDataProviderError(providerYahoo, "index snapshot", err)
	}
	for _, symbol := range symbols {
		if _, ok := quotes[symbol]; !ok {
			return nil, domain.NewDataProviderError(providerYahoo, "index snapshot", fmt.Errorf("no quote returned for %s", symbol))
		}
	}
	return quotes, nil
}

// FetchIpoCalendar returns listings between from and to, both inclusive,
// ordered by date then name.
func (h marketDataRepositoryHandler) FetchIpoCalendar(ctx context.Context, from, to time.Time) ([]domain.IpoListing, error) {
	if to.Before(from) {
		return nil, domain.NewConfigError("ipo window", "to (%s) is before from (%s)", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	if h.IpoClient == nil {
		return nil, domain.NewDataProviderError(providerFinnhub, "ipo calendar", errors.New("client not configured"))
	}

	response, err := h.IpoClient.GetIpoCalendar(ctx, from, to)
	if err != nil {
		return nil, domain.NewDataProviderError(providerFinnhub, "ipo calendar", err)
	}
	if response == nil {
		return nil, domain.NewDataProviderError(providerFinnhub, "ipo calendar", errors.New("empty response"))
	}

	out := make([]domain.IpoListing, 0, len(response.IpoCalendar))
	for _, e := range response.IpoCalendar {
		out = append(out, domain.IpoListing{
			Date:     e.Date,
			Name:     e.Name,
			Symbol:   e.Symbol,
			Exchange: e.Exchange,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (h marketDataRepositoryHandler) FetchTickerSnapshot(ctx context.Context) ([]domain.TickerChange, error) {
	if h.TickerClient == nil {
		return nil, domain.NewDataProviderError(providerBinance, "ticker snapshot", errors.New("client not configured"))
	}

	tickers, err := h.TickerClient.Get24hrTickers(ctx)
	if err != nil {
		return nil, domain.NewDataProviderError(providerBinance, "ticker snapshot", err)
	}

	out := make([]domain.TickerChange, 0, len(tickers))
	for _, t := range tickers {
		change, err := strconv.ParseFloat(t.PriceChangePercent, 64)
		if err != nil {
			return nil, domain.NewDataProviderError(providerBinance, "ticker snapshot", fmt.Errorf("failed to parse change %q for %s: %w", t.PriceChangePercent, t.Symbol, err))
		}
		out = append(out, domain.TickerChange{
			Symbol:             t.Symbol,
			PriceChangePercent: change,
		})
	}

	return out, nil
}
