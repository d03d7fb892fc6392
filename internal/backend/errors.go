package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the server-provided status and message. When the server
// gives no message a generic one is substituted so raw bodies never reach
// the UI.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status. Bulk
// bookmark removal uses it to skip already-deleted records.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = "request failed, please try again"
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
