package markko

import (
	"encoding/json"
	"fmt"
)

// Envelope is the response shape shared by all resource endpoints.
// Data is kept raw because its shape is resource-specific; use Decode
// to unmarshal it into a caller-owned type. Meta and Links carry
// pagination data for collection endpoints.
type Envelope struct {
	Data    json.RawMessage     `json:"data"`
	Error   bool                `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
	Code    int                 `json:"code,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Meta    json.RawMessage     `json:"meta,omitempty"`
	Links   json.RawMessage     `json:"links,omitempty"`
}

// Decode unmarshals the envelope's data payload into dst.
func (e *Envelope) Decode(dst any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, dst); err != nil {
		return fmt.Errorf("decoding envelope data: %w", err)
	}
	return nil
}

// apiError converts an error envelope into an *APIError. The fallback
// code is used when the envelope does not carry one (typically the HTTP
// status).
func (e *Envelope) apiError(fallbackCode int) *APIError {
	code := e.Code
	if code == 0 {
		code = fallbackCode
	}
	return &APIError{
		Message: e.Message,
		Code:    code,
		Errors:  e.Errors,
	}
}
