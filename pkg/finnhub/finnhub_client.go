package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://finnhub.io/api/v1"
	// free tier allows 60 calls a minute
	DefaultRateLimit = rate.Limit(1)
)

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
	Limiter    *rate.Limiter
}

func NewClient(apiKey string, timeout time.Duration) Client {
	return Client{
		HttpClient: &http.Client{Timeout: timeout},
		ApiKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		Limiter:    rate.NewLimiter(DefaultRateLimit, 5),
	}
}

type IpoEvent struct {
	Date             string  `json:"date"`
	Exchange         string  `json:"exchange"`
	Name             string  `json:"name"`
	NumberOfShares   float64 `json:"numberOfShares"`
	Price            string  `json:"price"`
	Status           string  `json:"status"`
	Symbol           string  `json:"symbol"`
	TotalSharesValue float64 `json:"totalSharesValue"`
}

type IpoCalendarResponse struct {
	IpoCalendar []IpoEvent `json:"ipoCalendar"`
}

// GetIpoCalendar lists IPOs scheduled between from and to, inclusive.
func (c Client) GetIpoCalendar(ctx context.Context, from, to time.Time) (*IpoCalendarResponse, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.DateOnly))
	query.Set("to", to.Format(time.DateOnly))

	responseJson := IpoCalendarResponse{}
	if err := c.get(ctx, "/calendar/ipo", query, &responseJson); err != nil {
		return nil, err
	}

	return &responseJson, nil
}

func (c Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Finnhub-Token", c.ApiKey)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Error == "" {
			return fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	if err := json.Unmarshal(responseBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
