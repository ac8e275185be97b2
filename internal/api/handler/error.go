package handler

import "time"

// APIError is the canonical error envelope for all 4xx/5xx responses.
// Errors is populated only for validation failures, one "field: message"
// entry per offending field.
type APIError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Errors    []string  `json:"errors,omitempty"`
}
