package models

type AnalysisCriteria struct {
	DepartureID  string  `json:"departure_id"`
	ArrivalID    string  `json:"arrival_id"`
	TripType     string  `json:"trip_type"`
	OutboundDate string  `json:"outbound_date"`
	ReturnDate   *string `json:"return_date,omitempty"`
	Currency     string  `json:"currency"`
}

type AnalysisMetadata struct {
	Engine           string `json:"engine"`
	Model            string `json:"model"`
	SearchTimeMs     int64  `json:"search_time_ms"`
	CompletionTimeMs int64  `json:"completion_time_ms"`
}

type AnalysisResponse struct {
	SearchCriteria AnalysisCriteria `json:"search_criteria"`
	Metadata       AnalysisMetadata `json:"metadata"`
	Result         string           `json:"result"`
}

type CredentialsStatus struct {
	SearchAPIKeySet     bool `json:"serpapi_api_key_set"`
	CompletionAPIKeySet bool `json:"openai_api_key_set"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
