package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type AssetClass string

const (
	AssetClassStock  AssetClass = "stock"
	AssetClassCrypto AssetClass = "crypto"
)

type StockHolding struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Holdings is the owned positions document. Crypto symbols carry their
// quote currency as a suffix, e.g. BTC-USD.
type Holdings struct {
	Stocks           map[string]StockHolding    `json:"stocks"`
	Cryptocurrencies map[string]decimal.Decimal `json:"cryptocurrencies"`
}

// InstrumentCurrency is one entry of the instrument -> base currency set.
type InstrumentCurrency struct {
	Symbol     string
	Currency   string
	AssetClass AssetClass
}

// Position is an amount held of one instrument in one asset class.
type Position struct {
	Symbol string
	Amount decimal.Decimal
}

// CryptoCurrency parses the quote currency out of an ASSET-CURRENCY symbol.
func CryptoCurrency(symbol string) (string, error) {
	parts := strings.Split(symbol, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("crypto symbol %q is not of the form ASSET-CURRENCY", symbol)
	}
	return strings.ToUpper(parts[1]), nil
}

func (h Holdings) StockSymbols() []string {
	symbols := []string{}
	for symbol := range h.Stocks {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (h Holdings) CryptoSymbols() []string {
	symbols := []string{}
	for symbol := range h.Cryptocurrencies {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Positions lists the holdings of one asset class, sorted by symbol.
func (h Holdings) Positions(class AssetClass) []Position {
	positions := []Position{}
	switch class {
	case AssetClassStock:
		for _, symbol := range h.StockSymbols() {
			positions = append(positions, Position{
				Symbol: symbol,
				Amount: h.Stocks[symbol].Amount,
			})
		}
	case AssetClassCrypto:
		for _, symbol := range h.CryptoSymbols() {
			positions = append(positions, Position{
				Symbol: symbol,
				Amount: h.Cryptocurrencies[symbol],
			})
		}
	}
	return positions
}

// InstrumentCurrencies derives the instrument -> base currency set. An
// instrument held in both asset classes appears once per class, but it
// must have the same base currency in both.
func (h Holdings) InstrumentCurrencies() ([]InstrumentCurrency, error) {
	out := []InstrumentCurrency{}
	seen := map[string]string{}

	add := func(symbol, currency string, class AssetClass) error {
		if existing, ok := seen[symbol]; ok && existing != currency {
			return NewConfigError("holdings", "%s has conflicting base currencies %s and %s", symbol, existing, currency)
		}
		seen[symbol] = currency
		out = append(out, InstrumentCurrency{
			Symbol:     symbol,
			Currency:   currency,
			AssetClass: class,
		})
		return nil
	}

	for _, symbol := range h.StockSymbols() {
		if err := add(symbol, strings.ToUpper(h.Stocks[symbol].Currency), AssetClassStock); err != nil {
			return nil, err
		}
	}
	for _, symbol := range h.CryptoSymbols() {
		currency, err := CryptoCurrency(symbol)
		if err != nil {
			return nil, &ConfigError{Source: "holdings", Err: err}
		}
		if err := add(symbol, currency, AssetClassCrypto); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Validate checks the invariants the loader guarantees.
func (h Holdings) Validate() error {
	if h.Stocks == nil {
		return NewConfigError("holdings", "missing required key \"stocks\"")
	}
	if h.Cryptocurrencies == nil {
		return NewConfigError("holdings", "missing required key \"cryptocurrencies\"")
	}
	for _, symbol := range h.StockSymbols() {
		stock := h.Stocks[symbol]
		if strings.TrimSpace(symbol) == "" {
			return NewConfigError("holdings", "empty stock symbol")
		}
		if stock.Currency == "" {
			return NewConfigError("holdings", "stock %s is missing a currency", symbol)
		}
		if stock.Amount.IsNegative() {
			return NewConfigError("holdings", "stock %s has negative amount %s", symbol, stock.Amount)
		}
	}
	for _, symbol := range h.CryptoSymbols() {
		amount := h.Cryptocurrencies[symbol]
		if _, err := CryptoCurrency(symbol); err != nil {
			return &ConfigError{Source: "holdings", Err: err}
		}
		if amount.IsNegative() {
			return NewConfigError("holdings", "crypto %s has negative amount %s", symbol, amount)
		}
	}
	return nil
}
