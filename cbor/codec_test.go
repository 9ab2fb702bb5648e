package cbor

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/machinefabric/managers-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *managers.Snapshot {
	t.Helper()
	c := managers.NewContext()
	t.Cleanup(func() { _ = c.Close() })
	c.Manager1()
	c.Manager2()
	c.Manager3()
	c.Manager4()
	return c.Snapshot()
}

// TEST070: Test a snapshot survives an encode/decode roundtrip
func TestSnapshotRoundtrip(t *testing.T) {
	snap := testSnapshot(t)

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, snap, decoded)
	assert.NoError(t, managers.ValidateSnapshot(decoded))
}

// TEST071: Test encoding is deterministic
func TestEncodeDeterministic(t *testing.T) {
	snap := testSnapshot(t)

	a, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	b, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TEST072: Test decoding rejects snapshots missing required fields
func TestDecodeMissingFields(t *testing.T) {
	data, err := fxcbor.Marshal(managers.Snapshot{FailurePolicy: "permanent"})
	require.NoError(t, err)
	_, err = DecodeSnapshot(data)
	assert.EqualError(t, err, "missing counter_mode")

	data, err = fxcbor.Marshal(managers.Snapshot{
		CounterMode:   "shared",
		FailurePolicy: "permanent",
		Managers:      []managers.ManagerSnapshot{{Name: "manager1"}},
	})
	require.NoError(t, err)
	_, err = DecodeSnapshot(data)
	assert.EqualError(t, err, "manager manager1: missing state")
}

// TEST073: Test nil, garbage and oversized input are rejected
func TestDecodeInvalidInput(t *testing.T) {
	_, err := EncodeSnapshot(nil)
	assert.Error(t, err)

	_, err = DecodeSnapshot([]byte{0xff, 0x00})
	assert.Error(t, err)

	_, err = DecodeSnapshot(make([]byte, MaxSnapshotSize+1))
	assert.Error(t, err)
}
