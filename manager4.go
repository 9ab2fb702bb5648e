package managers

import (
	"github.com/google/uuid"
)

const Manager4Name = "manager4"

// Manager4 cannot exist without its resource: a factory failure fails
// construction, and the accessor reports the instance as absent (nil).
type Manager4 struct {
	id       uuid.UUID
	factory  *ResourceFactory
	resource *Resource
}

func newManager4(factory *ResourceFactory) (*Manager4, error) {
	resource, err := factory.Create()
	if err != nil {
		return nil, NewConstructionFailedError(Manager4Name, err)
	}
	return &Manager4{
		id:       uuid.New(),
		factory:  factory,
		resource: resource,
	}, nil
}

// ID identifies this instance. Calling it on an absent handle panics.
func (m *Manager4) ID() uuid.UUID {
	if m == nil {
		panic(NewAbsentInstanceError(Manager4Name))
	}
	return m.id
}

// GetResource returns the resource. A present handle always has one;
// calling GetResource on an absent (nil) handle panics with an AbsentInstance error.
func (m *Manager4) GetResource() *Resource {
	if m == nil {
		panic(NewAbsentInstanceError(Manager4Name))
	}
	return m.resource
}

func (m *Manager4) release() error {
	return m.factory.Destroy(m.resource)
}
