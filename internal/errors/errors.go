package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Per-pass errors. All of them are converted into a scheduled retry by the
// controller's error policy; none of them terminates the process.

// ErrSecretNotFound indicates the source or destination Secret could not be read.
var ErrSecretNotFound = errors.New("secret not found")

// ErrSourceFieldMissing indicates a copy item references a key that is absent
// from the source Secret's data.
var ErrSourceFieldMissing = errors.New("source data field is missing")

// ErrUnknown covers every other failure of a reconciliation pass (patch
// rejection, serialization, transport). The cause is kept for logging only.
var ErrUnknown = errors.New("unknown error")

// Startup errors.

// ErrDefinition indicates the TradeSecret CustomResourceDefinition is absent or
// not at the expected version. It is fatal to process startup.
var ErrDefinition = errors.New("custom resource definition error")

// SecretRole identifies which side of a copy rule a Secret plays.
type SecretRole string

const (
	SecretRoleSource      SecretRole = "source"
	SecretRoleDestination SecretRole = "destination"
)

// SecretNotFoundError is returned when a Secret referenced by a TradeSecret
// cannot be fetched, whether it does not exist or the read failed.
type SecretNotFoundError struct {
	Role SecretRole
	Name string
	Err  error
}

func (e *SecretNotFoundError) Error() string {
	return fmt.Sprintf("%s secret %q not found: %v", e.Role, e.Name, e.Err)
}

func (e *SecretNotFoundError) Is(target error) bool {
	return target == ErrSecretNotFound
}

func (e *SecretNotFoundError) Unwrap() error {
	return e.Err
}

// SourceFieldMissingError names the source key that was not present.
type SourceFieldMissingError struct {
	Key string
}

func (e *SourceFieldMissingError) Error() string {
	return fmt.Sprintf("source data field %q is missing", e.Key)
}

func (e *SourceFieldMissingError) Is(target error) bool {
	return target == ErrSourceFieldMissing
}

// DefinitionError describes why the installed CustomResourceDefinition was rejected.
type DefinitionError struct {
	Name   string
	Reason string
	Err    error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crd %s: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("crd %s: %s", e.Name, e.Reason)
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// WrapUnknown wraps an error as an unknown reconciliation error. If the error
// already carries one of the known kinds it is returned as-is.
func WrapUnknown(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrSecretNotFound) || errors.Is(err, ErrSourceFieldMissing) || errors.Is(err, ErrUnknown) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrUnknown, err)
}

// Reason values used as low-cardinality labels on logs, events and metrics.
const (
	ReasonSecretNotFound     = "SecretNotFound"
	ReasonSourceFieldMissing = "SourceFieldMissing"
	ReasonDefinition         = "DefinitionError"
	ReasonUnknown            = "Unknown"
)

// Reason maps an error onto its kind. Errors that are not part of the
// taxonomy are reported as Unknown.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSecretNotFound):
		return ReasonSecretNotFound
	case errors.Is(err, ErrSourceFieldMissing):
		return ReasonSourceFieldMissing
	case errors.Is(err, ErrDefinition):
		return ReasonDefinition
	default:
		return ReasonUnknown
	}
}

// IsCRDMissingError checks if an error indicates that a CRD is not installed.
func IsCRDMissingError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no matches for kind") ||
		strings.Contains(errStr, "no kind is registered for the type") ||
		strings.Contains(errStr, "could not find the requested resource")
}
