package errors

import (
	stderrors "errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain is the error domain for userboard errors.
const Domain = "github.com/louisbranch/userboard"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional context for templating
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode returns the code of the first *Error in err's chain, or CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// ToGRPCStatus converts the error to a gRPC status with errdetails.
// The status message contains the internal message for logging.
// The LocalizedMessage contains the user-facing translated message.
func (e *Error) ToGRPCStatus(locale string, userMessage string) error {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Message)

	st, err := st.WithDetails(
		&errdetails.ErrorInfo{
			Reason:   string(e.Code),
			Domain:   Domain,
			Metadata: e.Metadata,
		},
		&errdetails.LocalizedMessage{
			Locale:  locale,
			Message: userMessage,
		},
	)
	if err != nil {
		return status.New(grpcCode, e.Message).Err()
	}
	return st.Err()
}

// ToLocalizedGRPCStatus renders the user-facing message for locale from the
// error catalog and converts e to a gRPC status.
func (e *Error) ToLocalizedGRPCStatus(locale string) error {
	return e.ToGRPCStatus(locale, LocalizeCode(locale, e.Code))
}

// UserMessage extracts the best human-readable message from err.
//
// For gRPC status errors it prefers an attached LocalizedMessage detail and
// falls back to the status message. Other errors use their Error text. The
// result is empty when err carries no message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if st, ok := status.FromError(err); ok && st != nil {
		for _, detail := range st.Details() {
			if localized, ok := detail.(*errdetails.LocalizedMessage); ok {
				if message := strings.TrimSpace(localized.GetMessage()); message != "" {
					return message
				}
			}
		}
		return strings.TrimSpace(st.Message())
	}
	return strings.TrimSpace(err.Error())
}

// ReasonFromStatus returns the ErrorInfo reason attached to a gRPC status
// error, or CodeUnknown.
func ReasonFromStatus(err error) Code {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return CodeUnknown
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return Code(info.GetReason())
		}
	}
	return CodeUnknown
}
