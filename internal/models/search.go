package models

// SearchParameters is the flat key/value set sent to the flight-search API.
type SearchParameters map[string]string

const (
	ParamEngine       = "engine"
	ParamDepartureID  = "departure_id"
	ParamArrivalID    = "arrival_id"
	ParamOutboundDate = "outbound_date"
	ParamOutboundTime = "outbound_time"
	ParamCurrency     = "currency"
	ParamLanguage     = "hl"
	ParamAPIKey       = "api_key"
	ParamReturnDate   = "return_date"
)

// Redacted returns a copy safe for logging.
func (p SearchParameters) Redacted() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if k == ParamAPIKey && v != "" {
			v = "***"
		}
		out[k] = v
	}
	return out
}
