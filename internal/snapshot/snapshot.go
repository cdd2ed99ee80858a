// Package snapshot persists assessment runs and historical scores.
package snapshot

import (
	"sync"

	"github.com/Texasdada13/apptriage/internal/contract"
)

// SnapshotStoreManager manages the SnapshotStore instance.
type SnapshotStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshots    contract.SnapshotStore
}

var _ contract.StoreManager = &SnapshotStoreManager{} // Compile-time check

// GetSnapshotStore returns the snapshot SnapshotStore.
func (mgr *SnapshotStoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}
