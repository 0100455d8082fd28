package cmd

import (
	integration_tests "findash/integration-tests"
	"findash/internal/logger"
	"findash/internal/repository"
	"fmt"
	"os"
	"strings"
)

// with FINDASH_ENV=test every provider call is answered from the
// integration fixtures, so the binaries run without network or keys
func useOfflineData() bool {
	return strings.EqualFold(os.Getenv(logger.EnvKey), "test")
}

func newOfflineRepositories() (repository.MarketDataRepository, repository.HoldingsRepository, error) {
	marketDataRepository, err := integration_tests.NewMockMarketDataRepositoryForTests()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load fixtures: %w", err)
	}
	return marketDataRepository, integration_tests.NewMockHoldingsRepositoryForTests(), nil
}
