package cmd

import (
	"findash/api"
	"findash/internal/app"
	"findash/internal/logger"
	"findash/internal/repository"
	"findash/internal/service"
	"findash/internal/util"
	"findash/pkg/binance"
	"findash/pkg/finnhub"
	"fmt"
)

type Dependencies struct {
	Config                *util.Config
	RefreshHandler        app.RefreshHandler
	MarketSnapshotService service.MarketSnapshotService
	Store                 *app.DashboardStore
	Scheduler             *app.RefreshScheduler
	ApiHandler            *api.ApiHandler
}

// InitializeDependencies builds every client once from the loaded config
// and wires them through. Nothing below reads the environment itself.
func InitializeDependencies() (*Dependencies, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var marketDataRepository repository.MarketDataRepository
	holdingsRepository := repository.NewHoldingsRepository()

	if useOfflineData() {
		logger.Warn("serving market data from fixtures")
		marketDataRepository, holdingsRepository, err = newOfflineRepositories()
		if err != nil {
			return nil, err
		}
	} else {
		finnhubClient := finnhub.NewClient(cfg.Secrets.FinnhubApiKey, cfg.HttpTimeout())
		binanceClient := binance.NewClient(cfg.Secrets.Binance.ApiKey, cfg.HttpTimeout())
		marketDataRepository = repository.NewMarketDataRepository(
			repository.NewYahooRepository(),
			finnhubClient,
			binanceClient,
		)
	}

	currencyService := service.NewCurrencyService(marketDataRepository)
	marketSnapshotService := service.NewMarketSnapshotService(
		marketDataRepository,
		service.NewMarketSnapshotConfig(*cfg),
	)

	refreshHandler := app.RefreshHandler{
		HoldingsRepository:    holdingsRepository,
		CurrencyService:       currencyService,
		MarketSnapshotService: marketSnapshotService,
		HoldingsPath:          cfg.HoldingsPath,
		TargetCurrency:        cfg.TargetCurrency,
	}

	store := &app.DashboardStore{}
	scheduler := app.NewRefreshScheduler(refreshHandler, store, cfg.Period)

	apiHandler := &api.ApiHandler{
		Refresher: refreshHandler,
		Store:     store,
		Period:    cfg.Period,
		Logger:    logger.New(),
	}

	return &Dependencies{
		Config:                cfg,
		RefreshHandler:        refreshHandler,
		MarketSnapshotService: marketSnapshotService,
		Store:                 store,
		Scheduler:             scheduler,
		ApiHandler:            apiHandler,
	}, nil
}
