package managers

import (
	"strconv"
)

// ManagerSnapshot describes one singleton slot at a point in time
type ManagerSnapshot struct {
	Name       string `json:"name" cbor:"name"`
	State      string `json:"state" cbor:"state"`
	Attempts   int    `json:"attempts" cbor:"attempts"`
	InstanceID string `json:"instance_id,omitempty" cbor:"instance_id,omitempty"`
	Resource   string `json:"resource,omitempty" cbor:"resource,omitempty"`
	Error      string `json:"error,omitempty" cbor:"error,omitempty"`
}

// Snapshot describes every slot of a Context plus its factory state
type Snapshot struct {
	CounterMode     string            `json:"counter_mode" cbor:"counter_mode"`
	FailurePolicy   string            `json:"failure_policy" cbor:"failure_policy"`
	FactoryAttempts map[string]int64  `json:"factory_attempts" cbor:"factory_attempts"`
	Managers        []ManagerSnapshot `json:"managers" cbor:"managers"`
}

// Snapshot inspects the context without constructing anything
func (c *Context) Snapshot() *Snapshot {
	s := &Snapshot{
		CounterMode:   c.opts.counterMode.String(),
		FailurePolicy: c.m4.policy.String(),
		FactoryAttempts: map[string]int64{
			Manager3Name: c.m3Factory.Counter().Attempts(),
			Manager4Name: c.m4Factory.Counter().Attempts(),
		},
	}

	m1, st1, _ := c.m1.peek()
	ms1 := newManagerSnapshot(Manager1Name, st1, c.m1.attempts(), nil)
	if m1 != nil {
		ms1.InstanceID = m1.id.String()
		ms1.Resource = m1.GetResource()
	}

	m2, st2, _ := c.m2.peek()
	ms2 := newManagerSnapshot(Manager2Name, st2, c.m2.attempts(), nil)
	if m2 != nil {
		ms2.InstanceID = m2.id.String()
		if st2 == StateReady {
			ms2.Resource = strconv.Itoa(m2.GetResource())
		}
	}

	m3, st3, _ := c.m3.peek()
	ms3 := newManagerSnapshot(Manager3Name, st3, c.m3.attempts(), nil)
	if m3 != nil {
		ms3.InstanceID = m3.id.String()
		switch {
		case m3.resource == nil && st3 == StateReady:
			ms3.State = StateReadyWithoutResource.String()
		case st3 == StateReady:
			ms3.Resource = m3.resource.String()
		}
	}

	m4, st4, err4 := c.m4.peek()
	ms4 := newManagerSnapshot(Manager4Name, st4, c.m4.attempts(), err4)
	if m4 != nil {
		ms4.InstanceID = m4.id.String()
		if st4 == StateReady {
			ms4.Resource = m4.resource.String()
		}
	}

	s.Managers = []ManagerSnapshot{ms1, ms2, ms3, ms4}
	return s
}

func newManagerSnapshot(name string, state SlotState, attempts int, err error) ManagerSnapshot {
	ms := ManagerSnapshot{
		Name:     name,
		State:    state.String(),
		Attempts: attempts,
	}
	if err != nil {
		ms.Error = err.Error()
	}
	return ms
}

// Manager returns the snapshot entry for name, or nil
func (s *Snapshot) Manager(name string) *ManagerSnapshot {
	for i := range s.Managers {
		if s.Managers[i].Name == name {
			return &s.Managers[i]
		}
	}
	return nil
}
