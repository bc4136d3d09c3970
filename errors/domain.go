package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/vortex-fintech/form-lib/obfuscate"
	"github.com/vortex-fintech/form-lib/ordinal"
	"github.com/vortex-fintech/form-lib/weekday"
)

// DomainError is a single domain invariant failure.
type DomainError struct {
	Field  string
	Reason string
}

func (e DomainError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func DomainInvariant(field, reason string) DomainError {
	return DomainError{Field: field, Reason: reason}
}

func IsDomainError(err error) bool {
	_, ok := err.(DomainError)
	return ok
}

// DomainErrors is a batch of invariant failures.
type DomainErrors []DomainError

func (es DomainErrors) Error() string {
	if len(es) == 0 {
		return "domain_errors: empty"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return "domain_errors: " + strings.Join(parts, "; ")
}

func ConvertDomainToValidation(err error) ErrorResponse {
	if e, ok := err.(DomainError); ok {
		return ValidationFields(map[string]string{e.Field: e.Reason})
	}
	return Internal().WithReason("unexpected_domain_error")
}

func ConvertDomainErrorsToValidation(errs DomainErrors) ErrorResponse {
	if len(errs) == 0 {
		return InvalidArgument().WithReason("validation_failed")
	}
	fields := make(map[string]string, len(errs))
	viol := make([]FieldViolation, 0, len(errs))
	for _, e := range errs {
		fields[e.Field] = e.Reason
		viol = append(viol, FieldViolation{Field: e.Field, Reason: e.Reason})
	}
	return ValidationViolations(viol).WithDetails(fields)
}

// ToErrorResponse maps any error produced by the library to the unified
// shape. The sentinels of ordinal/weekday/obfuscate get stable reasons;
// anything unexpected degrades to Internal.
func ToErrorResponse(err error) ErrorResponse {
	var er ErrorResponse
	if stderrors.As(err, &er) {
		return er
	}
	var de DomainError
	if stderrors.As(err, &de) {
		return ConvertDomainToValidation(de)
	}

	switch {
	case stderrors.Is(err, obfuscate.ErrUnrecognized):
		return InvalidArgument().WithReason("unrecognized_contact")
	case stderrors.Is(err, obfuscate.ErrNotEmail):
		return InvalidArgument().WithReason("invalid_email")
	case stderrors.Is(err, obfuscate.ErrNotPhone):
		return InvalidArgument().WithReason("invalid_phone")
	case stderrors.Is(err, weekday.ErrBadDate):
		return InvalidArgument().WithReason("invalid_date")
	case stderrors.Is(err, ordinal.ErrNonPositive):
		return OutOfRange().WithReason("ordinal_out_of_range")
	}
	return Internal().WithReason("unexpected_error")
}
