package service

import (
	"context"
	"findash/internal/domain"
	"findash/internal/logger"
	"findash/internal/repository"
	"findash/internal/util"
	"math"
	"sort"
	"time"
)

type MarketSnapshotService interface {
	GetIndexMetrics(ctx context.Context) (*domain.IndexMetrics, error)
	GetUpcomingIpos(ctx context.Context) (*domain.IpoCalendar, error)
	GetTrendingCoins(ctx context.Context) (*domain.TrendingCoins, error)
	Fetch(ctx context.Context) domain.MarketSnapshot
}

type MarketSnapshotConfig struct {
	VolatilityIndex string
	BroadIndices    []domain.IndexTicker
	TopCoins        int
	IpoWindowDays   int
}

func NewMarketSnapshotConfig(cfg util.Config) MarketSnapshotConfig {
	return MarketSnapshotConfig{
		VolatilityIndex: cfg.VolatilityIndex,
		BroadIndices:    cfg.BroadIndices,
		TopCoins:        cfg.TopCoins,
		IpoWindowDays:   cfg.IpoWindowDays,
	}
}

type marketSnapshotServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	Config               MarketSnapshotConfig
	Now                  func() time.Time
}

func NewMarketSnapshotService(marketDataRepository repository.MarketDataRepository, cfg MarketSnapshotConfig) MarketSnapshotService {
	return marketSnapshotServiceHandler{
		MarketDataRepository: marketDataRepository,
		Config:               cfg,
		Now:                  time.Now,
	}
}

// GetIndexMetrics reports the volatility index as a level and each broad
// index as its change since today's open.
func (h marketSnapshotServiceHandler) GetIndexMetrics(ctx context.Context) (*domain.IndexMetrics, error) {
	if h.Config.VolatilityIndex == "" {
		return nil, domain.NewConfigError("volatilityIndex", "volatility index symbol is required")
	}

	symbols := []string{h.Config.VolatilityIndex}
	for _, idx := range h.Config.BroadIndices {
		symbols = append(symbols, idx.Symbol)
	}

	quotes, err := h.MarketDataRepository.FetchIndexSnapshot(ctx, symbols)
	if err != nil {
		return nil, err
	}

	vix := quotes[h.Config.VolatilityIndex]
	out := &domain.IndexMetrics{
		VolatilityIndex: domain.VolatilityIndexLevel{
			Symbol:           h.Config.VolatilityIndex,
			Level:            vix.Price,
			FiftyTwoWeekHigh: vix.FiftyTwoWeekHigh,
		},
		Indices: []domain.IndexChange{},
	}

	for _, idx := range h.Config.BroadIndices {
		change, err := intradayChange(quotes[idx.Symbol])
		if err != nil {
			return nil, err
		}
		out.Indices = append(out.Indices, domain.IndexChange{
			Label:  idx.Label,
			Symbol: idx.Symbol,
			Change: change,
		})
	}

	return out, nil
}

func intradayChange(q domain.IndexQuote) (float64, error) {
	if q.Open <= 0 || math.IsNaN(q.Open) {
		return 0, domain.NewComputationError(q.Symbol, "no opening price")
	}
	if math.IsNaN(q.Price) {
		return 0, domain.NewComputationError(q.Symbol, "no current price")
	}
	return q.Price/q.Open - 1, nil
}

// GetUpcomingIpos lists IPOs from today through the configured window.
func (h marketSnapshotServiceHandler) GetUpcomingIpos(ctx context.Context) (*domain.IpoCalendar, error) {
	if h.Config.IpoWindowDays < 0 {
		return nil, domain.NewConfigError("ipoWindowDays", "window must not be negative, got %d", h.Config.IpoWindowDays)
	}

	from := util.Today(h.Now())
	to := from.AddDate(0, 0, h.Config.IpoWindowDays)

	listings, err := h.MarketDataRepository.FetchIpoCalendar(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.IpoCalendar{
		From:     from,
		To:       to,
		Listings: listings,
	}, nil
}

// GetTrendingCoins ranks every pair by its 24h change, biggest gain
// first, and keeps the top N.
func (h marketSnapshotServiceHandler) GetTrendingCoins(ctx context.Context) (*domain.TrendingCoins, error) {
	top := h.Config.TopCoins
	if top <= 0 {
		return nil, domain.NewConfigError("topCoins", "must be positive, got %d", top)
	}

	tickers, err := h.MarketDataRepository.FetchTickerSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.TickerChange, 0, len(tickers))
	for _, t := range tickers {
		if math.IsNaN(t.PriceChangePercent) {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PriceChangePercent != ranked[j].PriceChangePercent {
			return ranked[i].PriceChangePercent > ranked[j].PriceChangePercent
		}
		return ranked[i].Symbol < ranked[j].Symbol
	})
	if len(ranked) > top {
		ranked = ranked[:top]
	}

	out := &domain.TrendingCoins{
		Top:   top,
		Coins: make([]domain.CoinChange, 0, len(ranked)),
	}
	for _, t := range ranked {
		out.Coins = append(out.Coins, domain.CoinChange{
			Symbol: t.Symbol,
			Change: t.PriceChangePercent / 100,
		})
	}

	return out, nil
}

// Fetch runs the three sub-fetches independently. A failed category is
// left nil and explained in Diagnostics.
func (h marketSnapshotServiceHandler) Fetch(ctx context.Context) domain.MarketSnapshot {
	log := logger.FromContext(ctx)
	out := domain.MarketSnapshot{}

	record := func(group string, err error) {
		d := domain.NewDiagnostic(group, err)
		log.Warnw("market snapshot group failed", "group", d.Group, "category", d.Category, "error", d.Message)
		out.Diagnostics = append(out.Diagnostics, d)
	}

	if index, err := h.GetIndexMetrics(ctx); err != nil {
		record(domain.GroupIndex, err)
	} else {
		out.Index = index
	}

	if ipos, err := h.GetUpcomingIpos(ctx); err != nil {
		record(domain.GroupIpos, err)
	} else {
		out.Ipos = ipos
	}

	if coins, err := h.GetTrendingCoins(ctx); err != nil {
		record(domain.GroupCoins, err)
	} else {
		out.Coins = coins
	}

	return out
}
