// Package errors collects the ambient-layer error types for the verifier
// module: configuration loading, cache bookkeeping, HTTP transport, and
// webhook publication. The pure verification packages (proof, sigrecovery,
// keybuilder, membership, event, verifier) never use these types; they
// return plain errors or a verifier.Result value instead.
package errors

import "fmt"

// VerifierConfigError reports a problem loading or validating an
// AccountConfig: a missing environment variable, or a value that fails
// validation.
type VerifierConfigError struct {
	Message string
	cause   error
}

func (e *VerifierConfigError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("verifier config error: %s: %v", e.Message, e.cause)
	}
	return fmt.Sprintf("verifier config error: %s", e.Message)
}

func (e *VerifierConfigError) Unwrap() error {
	return e.cause
}

// NewVerifierConfigError builds a VerifierConfigError wrapping cause (which
// may be nil).
func NewVerifierConfigError(message string, cause error) *VerifierConfigError {
	return &VerifierConfigError{Message: message, cause: cause}
}

// ErrMissingRequiredField reports that a required configuration field was
// empty or unset.
func ErrMissingRequiredField(field string) *VerifierConfigError {
	return NewVerifierConfigError(fmt.Sprintf("missing required field: %s", field), nil)
}

// ErrInvalidConfiguration reports a configuration value that failed
// validation for a reason other than being missing.
func ErrInvalidConfiguration(reason string) *VerifierConfigError {
	return NewVerifierConfigError(reason, nil)
}

// VerifierClientError reports a failure in the ambient runtime: cache
// bookkeeping, JSON encoding, or HTTP transport.
type VerifierClientError struct {
	Message string
	cause   error
}

func (e *VerifierClientError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("verifier client error: %s: %v", e.Message, e.cause)
	}
	return fmt.Sprintf("verifier client error: %s", e.Message)
}

func (e *VerifierClientError) Unwrap() error {
	return e.cause
}

// NewVerifierClientError builds a VerifierClientError wrapping cause (which
// may be nil).
func NewVerifierClientError(message string, cause error) *VerifierClientError {
	return &VerifierClientError{Message: message, cause: cause}
}

// ErrJSONMarshalFailed wraps a json.Marshal failure.
func ErrJSONMarshalFailed(cause error) *VerifierClientError {
	return NewVerifierClientError("failed to marshal JSON", cause)
}

// ErrJSONUnmarshalFailed wraps a json.Unmarshal failure.
func ErrJSONUnmarshalFailed(cause error) *VerifierClientError {
	return NewVerifierClientError("failed to unmarshal JSON", cause)
}

// ErrHTTPRequestFailed wraps an http.Client transport failure.
func ErrHTTPRequestFailed(cause error) *VerifierClientError {
	return NewVerifierClientError("HTTP request failed", cause)
}

// ErrCacheOverflow reports that an Append to a ProofCache would exceed its
// configured maximum size.
func ErrCacheOverflow(got, max int) *VerifierClientError {
	return NewVerifierClientError(fmt.Sprintf("cache overflow: %d bytes would exceed max of %d", got, max), nil)
}

// VerifierAPIError reports a non-2xx response from a remote service: the
// proof-submission RPC or the result-publication webhook.
type VerifierAPIError struct {
	StatusCode int
	ErrorMsg   string
	Code       string
	Details    interface{}
}

func (e *VerifierAPIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("verifier api error (status %d, code %s): %s", e.StatusCode, e.Code, e.ErrorMsg)
	}
	return fmt.Sprintf("verifier api error (status %d): %s", e.StatusCode, e.ErrorMsg)
}

// NewVerifierAPIError builds a VerifierAPIError with no error code.
func NewVerifierAPIError(statusCode int, errorMsg string) *VerifierAPIError {
	return &VerifierAPIError{StatusCode: statusCode, ErrorMsg: errorMsg}
}

// NewVerifierAPIErrorWithDetails builds a VerifierAPIError carrying an error
// code and arbitrary structured details from the remote response body.
func NewVerifierAPIErrorWithDetails(statusCode int, errorMsg, code string, details interface{}) *VerifierAPIError {
	return &VerifierAPIError{StatusCode: statusCode, ErrorMsg: errorMsg, Code: code, Details: details}
}
