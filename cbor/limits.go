package cbor

// Decoding limits. A snapshot has one entry per manager type, so anything
// bigger than these is not a snapshot this package produced.
const (
	MaxSnapshotSize     = 4096
	MaxSnapshotManagers = 16
)
