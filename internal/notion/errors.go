package notion

import "fmt"

// AuthError reports a 401 or 403 from the API: the credential is missing,
// expired, or not shared with the requested resource.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unauthorized (status %d)", e.Status)
	}
	return fmt.Sprintf("unauthorized (status %d): %s", e.Status, e.Message)
}

// APIError reports any other non-success response, carrying the upstream
// message and code verbatim.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// NetworkError reports a transport failure before any response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
