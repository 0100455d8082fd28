package app

import (
	"context"
	"findash/internal/calculator"
	"findash/internal/domain"
	"findash/internal/logger"
	"findash/internal/repository"
	"findash/internal/service"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RefreshResult is everything the renderer needs for one dashboard
// frame. A nil group means it failed this run; Diagnostics says why.
type RefreshResult struct {
	RunID       uuid.UUID                `json:"runId"`
	Period      domain.Period            `json:"period"`
	RefreshedAt time.Time                `json:"refreshedAt"`
	Portfolio   *domain.PortfolioMetrics `json:"portfolio,omitempty"`
	Index       *domain.IndexMetrics     `json:"index,omitempty"`
	Ipos        *domain.IpoCalendar      `json:"ipos,omitempty"`
	Coins       *domain.TrendingCoins    `json:"coins,omitempty"`
	Diagnostics []domain.Diagnostic      `json:"diagnostics"`
	Profile     *domain.Profile          `json:"profile,omitempty"`
}

type RefreshHandler struct {
	HoldingsRepository    repository.HoldingsRepository
	CurrencyService       service.CurrencyService
	MarketSnapshotService service.MarketSnapshotService

	HoldingsPath   string
	TargetCurrency string
}

// Refresh runs the three fetch groups one after the other: portfolio
// with the index metrics, upcoming IPOs, then trending coins. A failed
// group is logged and recorded as a diagnostic and never stops the
// others. Refresh does not retry and does not return an error.
func (h RefreshHandler) Refresh(ctx context.Context, period domain.Period) RefreshResult {
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runID", runID.String(), "period", period)
	ctx = logger.NewContext(ctx, log)

	profile, endProfile := domain.NewProfile()
	result := RefreshResult{
		RunID:       runID,
		Period:      period,
		RefreshedAt: time.Now().UTC(),
		Diagnostics: []domain.Diagnostic{},
		Profile:     profile,
	}

	record := func(group string, err error) {
		d := domain.NewDiagnostic(group, err)
		log.Errorw("refresh group failed", "group", d.Group, "category", d.Category, "error", d.Message)
		result.Diagnostics = append(result.Diagnostics, d)
	}

	// the index metrics share a group with the portfolio and are only
	// fetched once the portfolio is in
	_, endSpan := profile.StartNewSpan(domain.GroupPortfolio)
	err := guard(func() error {
		portfolio, err := h.computePortfolio(ctx, period)
		if err != nil {
			return err
		}
		result.Portfolio = portfolio
		return nil
	})
	endSpan()
	if err != nil {
		record(domain.GroupPortfolio, err)
		log.Warnw("skipping index metrics", "group", domain.GroupIndex)
	} else {
		_, endSpan = profile.StartNewSpan(domain.GroupIndex)
		err = guard(func() error {
			index, err := h.MarketSnapshotService.GetIndexMetrics(ctx)
			if err != nil {
				return err
			}
			result.Index = index
			return nil
		})
		endSpan()
		if err != nil {
			record(domain.GroupIndex, err)
		}
	}

	_, endSpan = profile.StartNewSpan(domain.GroupIpos)
	err = guard(func() error {
		ipos, err := h.MarketSnapshotService.GetUpcomingIpos(ctx)
		if err != nil {
			return err
		}
		result.Ipos = ipos
		return nil
	})
	endSpan()
	if err != nil {
		record(domain.GroupIpos, err)
	}

	_, endSpan = profile.StartNewSpan(domain.GroupCoins)
	err = guard(func() error {
		coins, err := h.MarketSnapshotService.GetTrendingCoins(ctx)
		if err != nil {
			return err
		}
		result.Coins = coins
		return nil
	})
	endSpan()
	if err != nil {
		record(domain.GroupCoins, err)
	}

	endProfile()
	log.Infow("refresh complete", "diagnostics", len(result.Diagnostics), "totalMs", *profile.TotalMs)

	return result
}

func (h RefreshHandler) computePortfolio(ctx context.Context, period domain.Period) (*domain.PortfolioMetrics, error) {
	if err := period.Validate(); err != nil {
		return nil, &domain.ConfigError{Source: "period", Err: err}
	}

	holdings, err := h.HoldingsRepository.Load(h.HoldingsPath)
	if err != nil {
		return nil, err
	}

	instruments, err := holdings.InstrumentCurrencies()
	if err != nil {
		return nil, err
	}

	prices, err := h.CurrencyService.Normalize(ctx, instruments, period, h.TargetCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize prices: %w", err)
	}

	metrics, err := calculator.CalculatePortfolioMetrics(*holdings, *prices, period, h.TargetCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio metrics: %w", err)
	}
	for _, w := range metrics.Warnings {
		logger.FromContext(ctx).Warnw("partial portfolio metrics", "warning", w)
	}

	return metrics, nil
}

// guard turns a panic inside a group into an error so one bad group
// cannot take the run down.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
