package engine

import (
	"sync/atomic"

	"github.com/donaldgifford/card-price-tracker/internal/metrics"
	"github.com/donaldgifford/card-price-tracker/pkg/matcher"
)

// SnapshotHolder publishes the current reference snapshot. Readers load it
// once per batch; the importer swaps in a complete replacement.
type SnapshotHolder struct {
	current atomic.Pointer[matcher.Snapshot]
}

// Load returns the current snapshot, or nil before the first import.
func (h *SnapshotHolder) Load() *matcher.Snapshot {
	return h.current.Load()
}

// Store replaces the current snapshot.
func (h *SnapshotHolder) Store(s *matcher.Snapshot) {
	h.current.Store(s)
	if s == nil {
		metrics.SnapshotRecords.Set(0)
		return
	}
	metrics.SnapshotRecords.Set(float64(s.Len()))
	metrics.SnapshotImportTimestamp.Set(float64(s.ImportDate().Unix()))
}
