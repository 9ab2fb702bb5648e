package managers

import (
	"strconv"
	"sync/atomic"
)

// DefaultResourceValue is the payload of every resource the factory hands out
const DefaultResourceValue = 43

// Resource is the heap-allocated record produced by a ResourceFactory.
// It is read-only to everyone but the factory that created it.
type Resource struct {
	value    int
	released atomic.Bool
}

// Value returns the resource payload.
// Calling Value on an absent (nil) resource panics with an AbsentResource error,
// and calling it after release panics with a ResourceReleased error.
func (r *Resource) Value() int {
	if r == nil {
		panic(NewAbsentResourceError())
	}
	if r.released.Load() {
		panic(NewResourceReleasedError("resource"))
	}
	return r.value
}

// Released reports whether the owning manager has already given the resource back
func (r *Resource) Released() bool {
	return r != nil && r.released.Load()
}

func (r *Resource) String() string {
	return strconv.Itoa(r.Value())
}
