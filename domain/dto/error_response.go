package dto

import "time"

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
