package managers

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error types carried by ManagerError.Type
const (
	ErrorTypeResourceUnavailable = "ResourceUnavailable"
	ErrorTypeConstructionFailed  = "ConstructionFailed"
	ErrorTypeAbsentResource      = "AbsentResource"
	ErrorTypeAbsentInstance      = "AbsentInstance"
	ErrorTypeResourceReleased    = "ResourceReleased"
)

// Sentinels for errors.Is matching. Every ManagerError matches the sentinel of its Type.
var (
	ErrResourceUnavailable = errors.New("resource not ready")
	ErrConstructionFailed  = errors.New("construction failed")
	ErrAbsentResource      = errors.New("absent resource dereferenced")
	ErrAbsentInstance      = errors.New("absent instance dereferenced")
	ErrResourceReleased    = errors.New("resource already released")
)

var sentinels = map[string]error{
	ErrorTypeResourceUnavailable: ErrResourceUnavailable,
	ErrorTypeConstructionFailed:  ErrConstructionFailed,
	ErrorTypeAbsentResource:      ErrAbsentResource,
	ErrorTypeAbsentInstance:      ErrAbsentInstance,
	ErrorTypeResourceReleased:    ErrResourceReleased,
}

// ManagerError describes a failure inside one of the managers or the resource factory
type ManagerError struct {
	Type    string
	Manager string
	Attempt int64
	Message string
	cause   error
}

func (e *ManagerError) Error() string {
	return e.Message
}

func (e *ManagerError) Unwrap() error {
	return e.cause
}

// Is reports whether target is the sentinel for this error's Type.
func (e *ManagerError) Is(target error) bool {
	sentinel, ok := sentinels[e.Type]
	return ok && sentinel == target
}

// NewResourceUnavailableError creates an error for a factory attempt that produced nothing
func NewResourceUnavailableError(attempt, readyAfter int64) *ManagerError {
	return &ManagerError{
		Type:    ErrorTypeResourceUnavailable,
		Attempt: attempt,
		Message: fmt.Sprintf("Resource not ready: attempt %d, available from attempt %d", attempt, readyAfter),
	}
}

// NewConstructionFailedError creates an error for a manager whose constructor could not complete
func NewConstructionFailedError(manager string, cause error) *ManagerError {
	attempt := int64(-1)
	var merr *ManagerError
	if errors.As(cause, &merr) {
		attempt = merr.Attempt
	}
	return &ManagerError{
		Type:    ErrorTypeConstructionFailed,
		Manager: manager,
		Attempt: attempt,
		Message: fmt.Sprintf("%s construction failed: %v", manager, cause),
		cause:   errors.Wrap(cause, "acquire resource"),
	}
}

// NewAbsentResourceError creates the fault raised when an absent resource is dereferenced
func NewAbsentResourceError() *ManagerError {
	return &ManagerError{
		Type:    ErrorTypeAbsentResource,
		Message: "Absent resource dereferenced - check GetResource() for nil before use",
	}
}

// NewAbsentInstanceError creates the fault raised when an absent instance handle is used
func NewAbsentInstanceError(manager string) *ManagerError {
	return &ManagerError{
		Type:    ErrorTypeAbsentInstance,
		Manager: manager,
		Message: fmt.Sprintf("Absent %s instance dereferenced - check Instance() for nil before use", manager),
	}
}

// NewResourceReleasedError creates an error for access to, or a second release of, a released resource
func NewResourceReleasedError(manager string) *ManagerError {
	return &ManagerError{
		Type:    ErrorTypeResourceReleased,
		Manager: manager,
		Message: fmt.Sprintf("%s resource already released", manager),
	}
}

// IsResourceUnavailable reports whether err, or anything it wraps, is a ResourceUnavailable error
func IsResourceUnavailable(err error) bool {
	return errors.Is(err, ErrResourceUnavailable)
}

// IsConstructionFailed reports whether err is a ConstructionFailed error
func IsConstructionFailed(err error) bool {
	return errors.Is(err, ErrConstructionFailed)
}

// ErrContextClosed is raised when a manager is requested from a context that has been torn down
var ErrContextClosed = errors.New("managers: context closed")
