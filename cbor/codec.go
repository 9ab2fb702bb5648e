// Package cbor encodes manager snapshots as deterministic CBOR.
package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/machinefabric/managers-go"
	"github.com/pkg/errors"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: build encode mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxSnapshotManagers,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: build decode mode: %v", err))
	}
}

// EncodeSnapshot encodes a snapshot to CBOR bytes.
// Map keys are sorted, so equal snapshots always encode to equal bytes.
func EncodeSnapshot(s *managers.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil snapshot")
	}
	data, err := encMode.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}
	if len(data) > MaxSnapshotSize {
		return nil, errors.Errorf("encoded snapshot is %d bytes, limit is %d", len(data), MaxSnapshotSize)
	}
	return data, nil
}

// DecodeSnapshot decodes CBOR bytes to a snapshot
func DecodeSnapshot(data []byte) (*managers.Snapshot, error) {
	if len(data) > MaxSnapshotSize {
		return nil, errors.Errorf("snapshot is %d bytes, limit is %d", len(data), MaxSnapshotSize)
	}
	var s managers.Snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}

	if s.CounterMode == "" {
		return nil, errors.New("missing counter_mode")
	}
	if s.FailurePolicy == "" {
		return nil, errors.New("missing failure_policy")
	}
	for i, m := range s.Managers {
		if m.Name == "" {
			return nil, errors.Errorf("manager %d: missing name", i)
		}
		if m.State == "" {
			return nil, errors.Errorf("manager %s: missing state", m.Name)
		}
	}
	return &s, nil
}
