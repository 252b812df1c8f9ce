package httpapi

import "github.com/baditaflorin/go_palindrome/internal/core/domain"

// CheckRequest is the body of a palindrome check. Omitted options default to true.
type CheckRequest struct {
	Text              string `json:"text"`
	IgnoreSpaces      *bool  `json:"ignoreSpaces,omitempty"`
	IgnoreCase        *bool  `json:"ignoreCase,omitempty"`
	IgnorePunctuation *bool  `json:"ignorePunctuation,omitempty"`
}

// Options resolves the request flags against the defaults.
func (r CheckRequest) Options() domain.Options {
	opts := domain.DefaultOptions()
	if r.IgnoreSpaces != nil {
		opts.IgnoreSpaces = *r.IgnoreSpaces
	}
	if r.IgnoreCase != nil {
		opts.IgnoreCase = *r.IgnoreCase
	}
	if r.IgnorePunctuation != nil {
		opts.IgnorePunctuation = *r.IgnorePunctuation
	}
	return opts
}

// QuickCheckResponse is the reduced view returned by the quick check.
type QuickCheckResponse struct {
	Text         string `json:"text"`
	IsPalindrome bool   `json:"isPalindrome"`
	Message      string `json:"message"`
}

// AddRequest is the body of a create request.
type AddRequest struct {
	Text string `json:"text"`
}

// HealthResponse reports liveness and the store size.
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Records int    `json:"records"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
