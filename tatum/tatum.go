// Package tatum wraps the Tatum v3 exchange-rate REST API.
package tatum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	bot "go-currency-report-bot"
)

const ApiUrlBase = "https://api.tatum.io/v3"

// Service executes a batch of rate lookups in a single upstream call.
// Results are correlated by BatchID; a request with no matching result is a
// lookup miss and must not be reported as an error.
type Service interface {
	Rates(ctx context.Context, requests []bot.RateRequest) ([]bot.RateResult, error)
}

// service tatum API
type service struct {
	// url base API url
	url string

	// apiKey sent as the x-api-key header
	apiKey string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid tatum Service. An empty url falls back to
// ApiUrlBase.
func NewService(url, apiKey string) Service {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url:    url,
		apiKey: apiKey,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Rates posts the whole batch at once. Batching exists to keep one user
// request at one upstream round-trip regardless of how many targets the user
// has selected.
func (s *service) Rates(ctx context.Context, requests []bot.RateRequest) ([]bot.RateResult, error) {
	type rateRequest struct {
		BatchID  string `json:"batchId"`
		BasePair string `json:"basePair"`
		Currency string `json:"currency"`
	}

	type rateResult struct {
		BatchID string `json:"batchId"`
		Value   string `json:"value"`
	}

	body := make([]rateRequest, 0, len(requests))
	for _, r := range requests {
		body = append(body, rateRequest{
			BatchID:  r.BatchID,
			BasePair: string(r.Pivot),
			Currency: r.Symbol,
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}

	url := fmt.Sprintf("%v/tatum/rate", s.url)

	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-api-key", s.apiKey)

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer httpResponse.Body.Close()

	respBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %v", httpResponse.Status)
	}

	// Anything but a JSON array is a protocol violation. A literal null
	// unmarshals into a nil slice without an error, so it is checked for
	// explicitly.
	var response []rateResult
	err = json.Unmarshal(respBytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if response == nil {
		return nil, fmt.Errorf("decoding json: response is not a list")
	}

	results := make([]bot.RateResult, 0, len(response))
	for _, r := range response {
		results = append(results, bot.RateResult{BatchID: r.BatchID, Value: r.Value})
	}

	return results, nil
}
