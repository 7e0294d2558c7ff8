package session

import "strings"

// Credentials are the two secrets a search needs. They are scoped to one
// session and passed explicitly to the clients that use them.
type Credentials struct {
	SearchAPIKey     string `json:"serpapi_api_key,omitempty"`
	CompletionAPIKey string `json:"openai_api_key,omitempty"`
}

func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.SearchAPIKey) != "" && strings.TrimSpace(c.CompletionAPIKey) != ""
}

// Merge fills fields missing from c with the ones from fallback.
func (c Credentials) Merge(fallback Credentials) Credentials {
	out := c
	if strings.TrimSpace(out.SearchAPIKey) == "" {
		out.SearchAPIKey = fallback.SearchAPIKey
	}
	if strings.TrimSpace(out.CompletionAPIKey) == "" {
		out.CompletionAPIKey = fallback.CompletionAPIKey
	}
	return out
}
