package searchparams

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightanalyst/internal/models"
)

func baseInput() Input {
	ret := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	return Input{
		DepartureID:  "DEL",
		ArrivalID:    "BOM",
		OutboundDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:   &ret,
		Now:          time.Date(2025, 2, 20, 10, 5, 0, 0, time.UTC),
		Currency:     "INR",
		APIKey:       "serp-key",
		Engine:       "google_flights",
	}
}

func TestBuild_ExactKeys(t *testing.T) {
	params := Build(baseInput())

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"engine", "departure_id", "arrival_id", "outbound_date", "outbound_time",
		"currency", "hl", "api_key", "return_date",
	}, keys)
}

func TestBuild_RoundTrip(t *testing.T) {
	params := Build(baseInput())

	assert.Equal(t, "google_flights", params[models.ParamEngine])
	assert.Equal(t, "DEL", params[models.ParamDepartureID])
	assert.Equal(t, "BOM", params[models.ParamArrivalID])
	assert.Equal(t, "2025-03-01", params[models.ParamOutboundDate])
	assert.Equal(t, "2025-03-05", params[models.ParamReturnDate])
	assert.Equal(t, "12:05", params[models.ParamOutboundTime])
	assert.Equal(t, "INR", params[models.ParamCurrency])
	assert.Equal(t, "en", params[models.ParamLanguage])
	assert.Equal(t, "serp-key", params[models.ParamAPIKey])
}

func TestBuild_OneWayDefaultsReturnDate(t *testing.T) {
	in := baseInput()
	in.ReturnDate = nil

	params := Build(in)
	assert.Equal(t, "2025-03-01", params[models.ParamReturnDate])
	assert.Len(t, params, 9)
}

func TestBuild_OutboundTime(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"morning", time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC), "09:00"},
		{"zero padded", time.Date(2025, 1, 1, 0, 1, 0, 0, time.UTC), "02:01"},
		{"midnight rollover", time.Date(2025, 1, 1, 23, 15, 0, 0, time.UTC), "01:15"},
		{"exactly 22:00", time.Date(2025, 1, 1, 22, 0, 59, 0, time.UTC), "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.Now = tt.now

			params := Build(in)
			assert.Equal(t, tt.want, params[models.ParamOutboundTime])
			assert.Equal(t, "2025-03-01", params[models.ParamOutboundDate])
		})
	}
}

func TestBuild_DoesNotValidate(t *testing.T) {
	in := baseInput()
	in.Currency = "NOT-A-CURRENCY"
	in.DepartureID = "??"
	in.ArrivalID = ""

	params := Build(in)
	assert.Equal(t, "NOT-A-CURRENCY", params[models.ParamCurrency])
	assert.Equal(t, "??", params[models.ParamDepartureID])
	assert.Equal(t, "", params[models.ParamArrivalID])
}

func TestBuild_Deterministic(t *testing.T) {
	assert.Equal(t, Build(baseInput()), Build(baseInput()))
}

func TestFromQuery(t *testing.T) {
	q := models.TripQuery{
		DepartureID:  "DEL",
		ArrivalID:    "BOM",
		TripType:     models.OneWay,
		OutboundDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Currency:     "INR",
	}
	now := time.Date(2025, 2, 20, 23, 15, 0, 0, time.UTC)

	params := Build(FromQuery(q, now, "k", "google_flights"))
	require.Len(t, params, 9)
	assert.Equal(t, "2025-03-01", params[models.ParamReturnDate])
	assert.Equal(t, "01:15", params[models.ParamOutboundTime])
	assert.Equal(t, "k", params[models.ParamAPIKey])
}
