package usecase

import "errors"

const (
	CodeCredentialsMissing      = "CREDENTIALS_MISSING"
	CodeMalformedMediaInput     = "MALFORMED_MEDIA_INPUT"
	CodeUpstreamRejected        = "UPSTREAM_REJECTED"
	CodeTransportError          = "TRANSPORT_ERROR"
	CodeInvalidUpstreamResponse = "INVALID_UPSTREAM_RESPONSE"
)

var ErrCredentialsMissing = &DomainError{
	Code:    CodeCredentialsMissing,
	Message: "Credentials missing. Set WHATSAPP_PHONE_NUMBER_ID and WHATSAPP_ACCESS_TOKEN in backend environment.",
}

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var target *DomainError
	return errors.As(err, &target)
}

func IsCredentialsMissing(err error) bool {
	var target *DomainError
	return errors.As(err, &target) && target.Code == CodeCredentialsMissing
}

// UpstreamError: a Meta respondeu >= 400. Status e body vão pro cliente sem reinterpretar.
type UpstreamError struct {
	Code       string
	StatusCode int
	Body       any
}

func (e *UpstreamError) Error() string {
	return "whatsapp api rejected the message"
}

func AsUpstreamError(err error) (*UpstreamError, bool) {
	var target *UpstreamError
	ok := errors.As(err, &target)
	return target, ok
}

type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var target *TechnicalError
	return errors.As(err, &target)
}
