package managers

import (
	"sync"

	"github.com/google/uuid"
)

const (
	Manager1Name = "manager1"
	// Greeting is Manager1's resource payload
	Greeting = "Hello!"
)

// Manager1 never fails: its instance and its string resource are both built on
// first use and stay valid for the life of the owning Context.
type Manager1 struct {
	id       uuid.UUID
	resource func() *string
}

func newManager1() *Manager1 {
	return &Manager1{
		id: uuid.New(),
		resource: sync.OnceValue(func() *string {
			s := Greeting
			return &s
		}),
	}
}

// ID identifies this instance
func (m *Manager1) ID() uuid.UUID {
	return m.id
}

// GetResource returns the resource, building it on first call.
// The result is never empty and does not change between calls.
func (m *Manager1) GetResource() string {
	return *m.resource()
}
