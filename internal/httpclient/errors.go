package httpclient

import "fmt"

// APIError is returned when an upstream answers with a non-2xx status
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// IsSuccess reports whether status is in the 2xx range
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
