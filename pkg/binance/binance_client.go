package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.binance.com"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
	Limiter    *rate.Limiter
}

// NewClient builds a client for the public market data endpoints. The
// API key is optional there; it is sent when present.
func NewClient(apiKey string, timeout time.Duration) Client {
	return Client{
		HttpClient: &http.Client{Timeout: timeout},
		ApiKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Limiter:    rate.NewLimiter(rate.Limit(5), 5),
	}
}

// Ticker24hr is one entry of the rolling 24 hour statistics. Binance
// sends decimals as strings.
type Ticker24hr struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	LastPrice          string `json:"lastPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
}

func (c Client) Get24hrTickers(ctx context.Context) ([]Ticker24hr, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/v3/ticker/24hr", nil)
	if err != nil {
		return nil, err
	}
	if c.ApiKey != "" {
		req.Header.Set("X-MBX-APIKEY", c.ApiKey)
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Msg == "" {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}
		return nil, fmt.Errorf("failed with status code %d: %s (code %d)", response.StatusCode, errJson.Msg, errJson.Code)
	}

	tickers := []Ticker24hr{}
	if err := json.Unmarshal(responseBytes, &tickers); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return tickers, nil
}
