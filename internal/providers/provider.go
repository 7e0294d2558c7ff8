package providers

import (
	"context"
	"fmt"

	"github.com/dharmasatrya/flightanalyst/internal/models"
)

// FlightSearcher runs one flight search and returns the provider's raw JSON
// body. The body is not interpreted here.
type FlightSearcher interface {
	Name() string
	Search(ctx context.Context, params models.SearchParameters) ([]byte, error)
}

type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
