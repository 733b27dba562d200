// Package types holds the wire envelopes shared by every HTTP response.
// Handlers never write bare payloads; success bodies wrap the payload in
// a data field and failures carry a single structured error.
package types

// SuccessEnvelope wraps every 2xx body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape. Code is one of the stable
// error codes and Details carries field errors on validation failures.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every non-2xx body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
