package models

import (
	"strings"
	"time"

	"github.com/dharmasatrya/flightanalyst/internal/timezone"
	"github.com/dharmasatrya/flightanalyst/pkg/currency"
)

type TripType string

const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// ParseTripType accepts the canonical values plus the labels used on the
// search form ("One-Way", "Return").
func ParseTripType(s string) (TripType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-way", "oneway", "one_way":
		return OneWay, nil
	case "round-trip", "roundtrip", "round_trip", "return":
		return RoundTrip, nil
	}
	return "", ErrInvalidTripType
}

func (t TripType) Valid() bool {
	return t == OneWay || t == RoundTrip
}

// TripQuery holds the user's search criteria for one search action.
// ReturnDate is nil iff TripType is OneWay.
type TripQuery struct {
	DepartureID  string
	ArrivalID    string
	TripType     TripType
	OutboundDate time.Time
	ReturnDate   *time.Time
	Currency     string
}

// Validate runs the checks the search form enforces before any external
// call is made. The parameter builder itself accepts anything.
func (q *TripQuery) Validate(today time.Time, allowed currency.Set) error {
	if strings.TrimSpace(q.DepartureID) == "" {
		return ErrMissingDeparture
	}
	if strings.TrimSpace(q.ArrivalID) == "" {
		return ErrMissingArrival
	}
	if !q.TripType.Valid() {
		return ErrInvalidTripType
	}
	if q.OutboundDate.IsZero() {
		return ErrMissingOutboundDate
	}
	if timezone.StartOfDay(q.OutboundDate).Before(timezone.StartOfDay(today)) {
		return ErrOutboundInPast
	}

	switch q.TripType {
	case OneWay:
		if q.ReturnDate != nil {
			return ErrUnexpectedReturnDate
		}
	case RoundTrip:
		if q.ReturnDate == nil {
			return ErrMissingReturnDate
		}
		if timezone.StartOfDay(*q.ReturnDate).Before(timezone.StartOfDay(q.OutboundDate)) {
			return ErrReturnBeforeOutbound
		}
	}

	if !allowed.Contains(q.Currency) {
		return ErrUnsupportedCurrency
	}
	return nil
}

// AnalysisRequest is the wire shape of a search submitted either as an HTML
// form or as a JSON body.
type AnalysisRequest struct {
	DepartureID  string `json:"departure_id" form:"departure_id"`
	ArrivalID    string `json:"arrival_id" form:"arrival_id"`
	TripType     string `json:"trip_type" form:"trip_type"`
	OutboundDate string `json:"outbound_date" form:"outbound_date"`
	ReturnDate   string `json:"return_date,omitempty" form:"return_date"`
	Currency     string `json:"currency" form:"currency"`
}

// ToTripQuery converts the request into a TripQuery with dates in loc. The
// return date is dropped for one-way trips, since the form keeps the field
// around even when it is hidden.
func (r AnalysisRequest) ToTripQuery(loc *time.Location) (TripQuery, error) {
	tripType := OneWay
	if strings.TrimSpace(r.TripType) != "" {
		t, err := ParseTripType(r.TripType)
		if err != nil {
			return TripQuery{}, err
		}
		tripType = t
	}

	q := TripQuery{
		DepartureID: strings.ToUpper(strings.TrimSpace(r.DepartureID)),
		ArrivalID:   strings.ToUpper(strings.TrimSpace(r.ArrivalID)),
		TripType:    tripType,
		Currency:    currency.Normalize(r.Currency),
	}

	if strings.TrimSpace(r.OutboundDate) == "" {
		return TripQuery{}, ErrMissingOutboundDate
	}
	outbound, err := timezone.ParseDate(r.OutboundDate, loc)
	if err != nil {
		return TripQuery{}, ErrInvalidDate
	}
	q.OutboundDate = outbound

	if tripType == RoundTrip && strings.TrimSpace(r.ReturnDate) != "" {
		ret, err := timezone.ParseDate(r.ReturnDate, loc)
		if err != nil {
			return TripQuery{}, ErrInvalidDate
		}
		q.ReturnDate = &ret
	}

	return q, nil
}

type CredentialsRequest struct {
	SearchAPIKey     string `json:"serpapi_api_key" form:"serpapi_api_key"`
	CompletionAPIKey string `json:"openai_api_key" form:"openai_api_key"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDeparture     ValidationError = "departure_id is required"
	ErrMissingArrival       ValidationError = "arrival_id is required"
	ErrInvalidTripType      ValidationError = "trip_type must be one-way or round-trip"
	ErrMissingOutboundDate  ValidationError = "outbound_date is required"
	ErrInvalidDate          ValidationError = "dates must use the YYYY-MM-DD format"
	ErrOutboundInPast       ValidationError = "outbound_date must not be before today"
	ErrMissingReturnDate    ValidationError = "return_date is required for round-trip searches"
	ErrUnexpectedReturnDate ValidationError = "return_date must be empty for one-way searches"
	ErrReturnBeforeOutbound ValidationError = "return_date must not be before outbound_date"
	ErrUnsupportedCurrency  ValidationError = "currency is not in the allowed set"
)
