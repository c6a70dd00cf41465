package model

import "fmt"

// NavigationError is the payload of a generic browser view error
type NavigationError struct {
	URL         string
	Description string
	Err         error
}

// Error implements error
func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.URL, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.URL, e.Description)
}

// Unwrap returns the underlying error
func (e *NavigationError) Unwrap() error {
	return e.Err
}

// HTTPError is the payload of an HTTP-level error seen while loading a page
type HTTPError struct {
	URL         string
	StatusCode  int
	Description string
}

// Error implements error
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP %d %s", e.URL, e.StatusCode, e.Description)
}
