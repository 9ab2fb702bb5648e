package managers

import (
	"github.com/google/uuid"
)

const Manager3Name = "manager3"

// Manager3 asks the factory for its resource once, at construction, and keeps
// whatever it got. Construction never fails; an unavailable resource is kept as nil.
type Manager3 struct {
	id       uuid.UUID
	factory  *ResourceFactory
	resource *Resource
}

func newManager3(factory *ResourceFactory) *Manager3 {
	resource, err := factory.Create()
	if err != nil {
		resource = nil
	}
	return &Manager3{
		id:       uuid.New(),
		factory:  factory,
		resource: resource,
	}
}

// ID identifies this instance
func (m *Manager3) ID() uuid.UUID {
	return m.id
}

// GetResource returns the resource acquired at construction, or nil if the
// factory had none to give. Check for nil before use.
func (m *Manager3) GetResource() *Resource {
	return m.resource
}

func (m *Manager3) release() error {
	if m.resource == nil {
		return nil
	}
	return m.factory.Destroy(m.resource)
}
