package errors

import "google.golang.org/grpc/codes"

func Unknown() ErrorResponse {
	return ErrorResponse{Code: codes.Unknown, Message: "Unknown error occurred"}
}

func InvalidArgument() ErrorResponse {
	return ErrorResponse{Code: codes.InvalidArgument, Message: "Invalid argument"}
}

func NotFound() ErrorResponse {
	return ErrorResponse{Code: codes.NotFound, Message: "Resource not found"}
}

func OutOfRange() ErrorResponse {
	return ErrorResponse{Code: codes.OutOfRange, Message: "Value out of range"}
}

func Internal() ErrorResponse {
	return ErrorResponse{Code: codes.Internal, Message: "Internal error"}
}

// ValidationFields builds the common "validation failed" response from flat
// field->reason pairs.
func ValidationFields(fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Code:       codes.InvalidArgument,
		Reason:     "validation_failed",
		Message:    "Validation failed",
		Details:    fields,
		Violations: ViolationsFromMap(fields),
	}
}

// ValidationViolations is ValidationFields for already-structured violations.
func ValidationViolations(v []FieldViolation) ErrorResponse {
	return ErrorResponse{
		Code:       codes.InvalidArgument,
		Reason:     "validation_failed",
		Message:    "Validation failed",
		Violations: v,
	}
}

func UnsupportedError(name, value string) ErrorResponse {
	return ErrorResponse{
		Code:    codes.InvalidArgument,
		Message: "Unsupported " + name,
		Details: map[string]string{name: value},
	}
}
