package repository

import (
	"encoding/json"
	"findash/internal/domain"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shopspring/decimal"
)

type HoldingsRepository interface {
	Load(path string) (*domain.Holdings, error)
}

func NewHoldingsRepository() HoldingsRepository {
	return holdingsRepositoryHandler{}
}

type holdingsRepositoryHandler struct{}

func (h holdingsRepositoryHandler) Load(path string) (*domain.Holdings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ConfigError{Source: path, Err: fmt.Errorf("failed to open holdings: %w", err)}
	}
	defer f.Close()

	holdings, err := ParseHoldings(f)
	if err != nil {
		return nil, &domain.ConfigError{Source: path, Err: err}
	}
	return holdings, nil
}

// the raw document, with pointers so missing keys can be told apart
// from zero values
type holdingsDocument struct {
	Stocks           *map[string]stockDocument   `json:"stocks"`
	Cryptocurrencies *map[string]decimal.Decimal `json:"cryptocurrencies"`
}

type stockDocument struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency"`
}

// ParseHoldings decodes and validates a holdings document.
func ParseHoldings(r io.Reader) (*domain.Holdings, error) {
	doc := holdingsDocument{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse holdings: %w", err)
	}
	if doc.Stocks == nil {
		return nil, fmt.Errorf("missing required key \"stocks\"")
	}
	if doc.Cryptocurrencies == nil {
		return nil, fmt.Errorf("missing required key \"cryptocurrencies\"")
	}

	holdings := &domain.Holdings{
		Stocks:           map[string]domain.StockHolding{},
		Cryptocurrencies: map[string]decimal.Decimal{},
	}
	stockSymbols := []string{}
	for symbol := range *doc.Stocks {
		stockSymbols = append(stockSymbols, symbol)
	}
	sort.Strings(stockSymbols)

	for _, symbol := range stockSymbols {
		stock := (*doc.Stocks)[symbol]
		if stock.Amount == nil {
			return nil, fmt.Errorf("stock %s is missing required key \"amount\"", symbol)
		}
		if stock.Currency == nil {
			return nil, fmt.Errorf("stock %s is missing required key \"currency\"", symbol)
		}
		holdings.Stocks[symbol] = domain.StockHolding{
			Amount:   *stock.Amount,
			Currency: *stock.Currency,
		}
	}
	for symbol, amount := range *doc.Cryptocurrencies {
		holdings.Cryptocurrencies[symbol] = amount
	}

	if err := holdings.Validate(); err != nil {
		return nil, err
	}
	if _, err := holdings.InstrumentCurrencies(); err != nil {
		return nil, err
	}

	return holdings, nil
}
