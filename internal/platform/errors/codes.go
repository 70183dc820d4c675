// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// User errors
	CodeUserIDRequired Code = "USER_ID_REQUIRED"
	CodeUserNotFound   Code = "USER_NOT_FOUND"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeUserIDRequired:
		return codes.InvalidArgument
	case CodeUserNotFound:
		return codes.NotFound
	case CodeStorageUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
