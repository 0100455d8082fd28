package domain

import (
	"errors"
	"fmt"
)

type ErrorCategory string

const (
	ErrorCategoryConfig       ErrorCategory = "config"
	ErrorCategoryDataProvider ErrorCategory = "data_provider"
	ErrorCategoryComputation  ErrorCategory = "computation"
	ErrorCategoryUnknown      ErrorCategory = "unknown"
)

// ConfigError means the holdings document or the run configuration
// could not be used.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error (%s): %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfigError(source string, format string, args ...any) error {
	return &ConfigError{
		Source: source,
		Err:    fmt.Errorf(format, args...),
	}
}

// DataProviderError wraps any failure of an external fetch, including
// responses that came back empty.
type DataProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *DataProviderError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *DataProviderError) Unwrap() error {
	return e.Err
}

func NewDataProviderError(provider, op string, err error) error {
	return &DataProviderError{
		Provider: provider,
		Op:       op,
		Err:      err,
	}
}

// ComputationError means the fetched data was not enough to derive a
// result, e.g. a price column with no values at all.
type ComputationError struct {
	Instrument string
	Err        error
}

func (e *ComputationError) Error() string {
	if e.Instrument == "" {
		return fmt.Sprintf("computation error: %v", e.Err)
	}
	return fmt.Sprintf("computation error for %s: %v", e.Instrument, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

func NewComputationError(instrument string, format string, args ...any) error {
	return &ComputationError{
		Instrument: instrument,
		Err:        fmt.Errorf(format, args...),
	}
}

// CategoryOf finds the first taxonomy error in the chain.
func CategoryOf(err error) ErrorCategory {
	var configErr *ConfigError
	var providerErr *DataProviderError
	var computationErr *ComputationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &configErr):
		return ErrorCategoryConfig
	case errors.As(err, &providerErr):
		return ErrorCategoryDataProvider
	case errors.As(err, &computationErr):
		return ErrorCategoryComputation
	default:
		return ErrorCategoryUnknown
	}
}

// Diagnostic is what is left of a failed fetch group once it has been
// turned into an absent result.
type Diagnostic struct {
	Group    string        `json:"group"`
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
}

func NewDiagnostic(group string, err error) Diagnostic {
	return Diagnostic{
		Group:    group,
		Category: CategoryOf(err),
		Message:  err.Error(),
	}
}

// fetch groups as they appear in diagnostics
const (
	GroupPortfolio = "portfolio"
	GroupIndex     = "index"
	GroupIpos      = "ipos"
	GroupCoins     = "coins"
)
