package searchparams

import (
	"time"

	"github.com/dharmasatrya/flightanalyst/internal/models"
	"github.com/dharmasatrya/flightanalyst/internal/timezone"
)

// SearchTimeOffset is added to the caller's clock to produce outbound_time.
const SearchTimeOffset = 2 * time.Hour

const Language = "en"

type Input struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate time.Time
	ReturnDate   *time.Time
	Now          time.Time
	Currency     string
	APIKey       string
	Engine       string
}

// Build produces the exact parameter set the flight-search API expects.
// It does not validate anything. A missing return date is sent as the
// outbound date because the API requires the field; it does not describe
// a return leg.
func Build(in Input) models.SearchParameters {
	outbound := timezone.FormatDate(in.OutboundDate)
	returnDate := outbound
	if in.ReturnDate != nil {
		returnDate = timezone.FormatDate(*in.ReturnDate)
	}

	return models.SearchParameters{
		models.ParamEngine:       in.Engine,
		models.ParamDepartureID:  in.DepartureID,
		models.ParamArrivalID:    in.ArrivalID,
		models.ParamOutboundDate: outbound,
		models.ParamOutboundTime: in.Now.Add(SearchTimeOffset).Format("15:04"),
		models.ParamCurrency:     in.Currency,
		models.ParamLanguage:     Language,
		models.ParamAPIKey:       in.APIKey,
		models.ParamReturnDate:   returnDate,
	}
}

// FromQuery fills an Input from a validated trip query.
func FromQuery(q models.TripQuery, now time.Time, apiKey, engine string) Input {
	return Input{
		DepartureID:  q.DepartureID,
		ArrivalID:    q.ArrivalID,
		OutboundDate: q.OutboundDate,
		ReturnDate:   q.ReturnDate,
		Now:          now,
		Currency:     q.Currency,
		APIKey:       apiKey,
		Engine:       engine,
	}
}
