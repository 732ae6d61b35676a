package types

import "encoding/json"

// StatusSuccess is the envelope status the backend uses for success.
const StatusSuccess = "success"

// Envelope is the {status, message, data} wrapper every backend response uses.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the envelope signals success.
func (e Envelope) OK() bool { return e.Status == StatusSuccess }
