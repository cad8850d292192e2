package model

import "fmt"

// NotFoundError reports a channel or video absent from an API response.
// Non-retriable without changing the input.
type NotFoundError struct {
	Kind string // "channel" or "video"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidDateFormatError reports a publishedAfter value that does not parse
// as a YYYY-MM-DD calendar date.
type InvalidDateFormatError struct {
	Value string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// APIRequestError reports a non-success transport status from the API.
// Message carries the decoded error document when the body parsed as JSON,
// the raw body otherwise.
type APIRequestError struct {
	StatusCode int
	Message    string
}

func (e *APIRequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("youtube api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("youtube api returned status %d: %s", e.StatusCode, e.Message)
}

// MalformedResponseError reports a success response missing a required part
// of its schema (e.g. a video item with no snippet).
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Endpoint, e.Reason)
}
