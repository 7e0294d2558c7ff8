package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dharmasatrya/flightanalyst/internal/models"
)

const (
	DefaultSerpAPIBaseURL = "https://serpapi.com"
	serpAPISearchPath     = "/search.json"
	maxErrorBody          = 512
)

var ErrMissingAPIKey = errors.New("search api key is not set")

type SerpAPIConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// SerpAPIClient queries SerpApi with the credential it was built with. Each
// Search is a single GET; nothing is retried or cached.
type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string, cfg SerpAPIConfig) *SerpAPIClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultSerpAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &SerpAPIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

func (c *SerpAPIClient) Search(ctx context.Context, params models.SearchParameters) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	if query.Get(models.ParamAPIKey) == "" {
		query.Set(models.ParamAPIKey, c.apiKey)
	}
	if query.Get(models.ParamAPIKey) == "" {
		return nil, NewProviderError(c.Name(), ErrMissingAPIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+serpAPISearchPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, NewProviderError(c.Name(), fmt.Errorf("create request: %w", c.stripURL(err)))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewProviderError(c.Name(), fmt.Errorf("request failed: %w", c.stripURL(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError(c.Name(), fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			Provider:   c.Name(),
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(body)),
		}
	}

	return body, nil
}

// stripURL drops the query string net/http puts in its errors; it carries
// the api_key.
func (c *SerpAPIClient) stripURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: c.baseURL + serpAPISearchPath, Err: urlErr.Err}
}

// errorMessage prefers the "error" field SerpApi puts in failed responses.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		msg = "empty response body"
	}
	return msg
}
