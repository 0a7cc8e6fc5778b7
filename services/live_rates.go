package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultLiveRatesURL is the public endpoint for market rates against
// INR. The response quotes foreign units per rupee, the inverse of the
// official table, and is shown for reference only.
const DefaultLiveRatesURL = "https://open.er-api.com/v6/latest/INR"

// LiveRates is the market snapshot shown next to the official table.
// It never feeds quote computation.
type LiveRates struct {
	Result      string             `json:"result"`
	LastUpdated string             `json:"time_last_update_utc"`
	Rates       map[string]float64 `json:"rates"`
}

var liveRatesClient = &http.Client{Timeout: 10 * time.Second}

// FetchLiveRates pulls the current market snapshot. Only the supported
// currencies survive the response filtering.
func FetchLiveRates(ctx context.Context, url string) (*LiveRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := liveRatesClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch live rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live rates endpoint returned %d", resp.StatusCode)
	}

	var parsed LiveRates
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode live rates: %w", err)
	}
	if parsed.Result != "success" {
		return nil, fmt.Errorf("live rates endpoint result %q", parsed.Result)
	}

	filtered := make(map[string]float64)
	for _, c := range SupportedCurrencies {
		if c == BaseCurrency {
			continue
		}
		if v, ok := parsed.Rates[string(c)]; ok {
			filtered[string(c)] = v
		}
	}
	parsed.Rates = filtered
	return &parsed, nil
}
