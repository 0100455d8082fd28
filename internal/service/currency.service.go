package service

import (
	"context"
	"findash/internal/calculator"
	"findash/internal/domain"
	"findash/internal/logger"
	"findash/internal/repository"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// CurrencyService expresses every instrument's price history in one
// target currency.
type CurrencyService interface {
	Normalize(ctx context.Context, instruments []domain.InstrumentCurrency, period domain.Period, target string) (*domain.PriceMatrix, error)
}

type currencyServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
}

func NewCurrencyService(marketDataRepository repository.MarketDataRepository) CurrencyService {
	return currencyServiceHandler{
		MarketDataRepository: marketDataRepository,
	}
}

type fxApplicationKind string

const (
	// one rate series shared by every instrument that needs converting
	broadcastRate fxApplicationKind = "broadcastRate"
	// one rate series per base currency
	perInstrumentRates fxApplicationKind = "perInstrumentRates"
)

// fxApplication is how fetched rates get applied to price columns. Only
// the field matching kind is set.
type fxApplication struct {
	kind  fxApplicationKind
	rate  []float64
	rates map[string][]float64
}

func (a fxApplication) rateFor(base string) ([]float64, bool) {
	switch a.kind {
	case broadcastRate:
		return a.rate, a.rate != nil
	case perInstrumentRates:
		r, ok := a.rates[base]
		return r, ok
	}
	return nil, false
}

func newFxApplication(pairs []domain.FxPair, fx domain.SeriesMatrix) (fxApplication, error) {
	column := func(p domain.FxPair) ([]float64, error) {
		values, ok := fx.Column(p.Code())
		if !ok {
			return nil, domain.NewComputationError(p.Code(), "no rates for pair")
		}
		return values, nil
	}

	if len(pairs) == 1 {
		rate, err := column(pairs[0])
		if err != nil {
			return fxApplication{}, err
		}
		return fxApplication{kind: broadcastRate, rate: rate}, nil
	}

	rates := map[string][]float64{}
	for _, p := range pairs {
		rate, err := column(p)
		if err != nil {
			return fxApplication{}, err
		}
		rates[p.Base] = rate
	}
	return fxApplication{kind: perInstrumentRates, rates: rates}, nil
}

// requiredFxPairs is the distinct set of base->target pairs needed to
// convert the instruments, ordered by base. Instruments already quoted
// in target need none.
func requiredFxPairs(instruments []domain.InstrumentCurrency, target string) []domain.FxPair {
	seen := map[string]struct{}{}
	out := []domain.FxPair{}
	for _, ic := range instruments {
		p := domain.FxPair{Base: ic.Currency, Quote: target}
		if p.IsTrivial() {
			continue
		}
		if _, ok := seen[p.Base]; ok {
			continue
		}
		seen[p.Base] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Base < out[j].Base
	})
	return out
}

func (h currencyServiceHandler) Normalize(
	ctx context.Context,
	instruments []domain.InstrumentCurrency,
	period domain.Period,
	target string,
) (*domain.PriceMatrix, error) {
	log := logger.FromContext(ctx)

	target = strings.ToUpper(strings.TrimSpace(target))
	if target == "" {
		return nil, domain.NewConfigError("targetCurrency", "target currency is required")
	}

	baseBySymbol := map[string]string{}
	symbols := []string{}
	for _, ic := range instruments {
		if base, ok := baseBySymbol[ic.Symbol]; ok {
			if base != ic.Currency {
				return nil, domain.NewConfigError(ic.Symbol, "conflicting currencies %s and %s", base, ic.Currency)
			}
			continue
		}
		baseBySymbol[ic.Symbol] = ic.Currency
		symbols = append(symbols, ic.Symbol)
	}
	sort.Strings(symbols)

	prices, err := h.MarketDataRepository.FetchHistoricalSeries(ctx, symbols, period)
	if err != nil {
		return nil, err
	}
	filledPrices, undefined := calculator.FillMatrix(prices.SeriesMatrix)
	if len(undefined) > 0 {
		return nil, domain.NewComputationError(undefined[0], "no prices in period %s", period)
	}

	pairs := requiredFxPairs(instruments, target)
	if len(pairs) == 0 {
		log.Debugw("no fx conversion needed", "target", target, "symbols", symbols)
		return &domain.PriceMatrix{SeriesMatrix: filledPrices}, nil
	}

	fx, err := h.MarketDataRepository.FetchFxRates(ctx, pairs, period)
	if err != nil {
		return nil, err
	}
	filledFx, undefined := calculator.FillMatrix(fx.Reindex(filledPrices.Dates))
	if len(undefined) > 0 {
		return nil, domain.NewComputationError(undefined[0], "no rates overlap the price dates")
	}

	application, err := newFxApplication(pairs, filledFx)
	if err != nil {
		return nil, err
	}
	log.Debugw("applying fx", "target", target, "pairs", pairs, "kind", application.kind)

	out := domain.NewSeriesMatrix(filledPrices.Dates)
	for _, symbol := range symbols {
		values, ok := filledPrices.Column(symbol)
		if !ok {
			return nil, domain.NewComputationError(symbol, "missing from price matrix")
		}
		converted := append([]float64{}, values...)
		if base := baseBySymbol[symbol]; base != target {
			rate, ok := application.rateFor(base)
			if !ok {
				return nil, domain.NewComputationError(symbol, "no %s%s rate", base, target)
			}
			floats.MulTo(converted, values, rate)
		}
		if err := out.Set(symbol, converted); err != nil {
			return nil, fmt.Errorf("failed to set normalized column: %w", err)
		}
	}

	return &domain.PriceMatrix{SeriesMatrix: out}, nil
}
