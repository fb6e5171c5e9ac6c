package snapshot_cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/afrazja/bizanalysis-backend/models"
)

const TTL = 30 * time.Second

// ── Snapshot listing cache ───────────────────────────────────────────────────
// Keyed by kind+limit; the dropdowns hammer the list endpoint on every page
// load, and snapshots are immutable so a short TTL is safe.

type listEntry struct {
	rows      []models.Snapshot
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache = map[string]*listEntry{}
)

func key(kind string, limit int) string {
	return fmt.Sprintf("%s:%d", kind, limit)
}

func GetList(kind string, limit int) ([]models.Snapshot, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if e, ok := listCache[key(kind, limit)]; ok && time.Since(e.fetchedAt) < TTL {
		return e.rows, true
	}
	return nil, false
}

func SetList(kind string, limit int, rows []models.Snapshot) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache[key(kind, limit)] = &listEntry{rows: rows, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on snapshot create) ──────────────────────────

func Invalidate() {
	listMu.Lock()
	listCache = map[string]*listEntry{}
	listMu.Unlock()
}
