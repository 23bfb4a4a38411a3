package paypro

import "fmt"

// ValidationError reports invalid caller input, rejected before any
// network call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// AuthError reports a failure to obtain a token from the gateway. The raw
// response headers and body are captured because the upstream auth contract
// is undocumented enough that they are needed to diagnose failures.
type AuthError struct {
	Msg     string
	Headers map[string][]string
	Body    string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paypro auth: %s: %v", e.Msg, e.Err)
	}
	return "paypro auth: " + e.Msg
}

func (e *AuthError) Unwrap() error { return e.Err }

// UpstreamError reports a network or parse failure on the create-order call.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paypro upstream: %s: %v", e.Msg, e.Err)
	}
	return "paypro upstream: " + e.Msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }
