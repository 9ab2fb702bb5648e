package managers

import (
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	Manager2Name = "manager2"
	// Manager2Value is the integer Manager2 allocates at construction
	Manager2Value = 42
)

// Manager2 owns an integer allocated eagerly by its constructor and released at teardown
type Manager2 struct {
	id       uuid.UUID
	resource atomic.Pointer[int]
}

func newManager2() *Manager2 {
	m := &Manager2{id: uuid.New()}
	v := Manager2Value
	m.resource.Store(&v)
	return m
}

// ID identifies this instance
func (m *Manager2) ID() uuid.UUID {
	return m.id
}

// GetResource returns the owned integer. It panics with a ResourceReleased
// error once the owning Context has been closed.
func (m *Manager2) GetResource() int {
	p := m.resource.Load()
	if p == nil {
		panic(NewResourceReleasedError(Manager2Name))
	}
	return *p
}

func (m *Manager2) release() error {
	if m.resource.Swap(nil) == nil {
		return NewResourceReleasedError(Manager2Name)
	}
	return nil
}
