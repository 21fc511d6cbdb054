package session

import (
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// cacheKey identifies a search result: endpoints plus the registry revision
// it was computed against.
type cacheKey struct {
	start, end gridgraph.Node
	revision   uint64
}

// pathCache stores previously computed paths for reuse.
// Entries from older revisions can never be hit again and are dropped
// whenever a newer revision is stored.
type pathCache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]gridgraph.Node
	maxSize int
	latest  uint64
}

func newPathCache(maxSize int) *pathCache {
	return &pathCache{
		entries: make(map[cacheKey][]gridgraph.Node),
		maxSize: maxSize,
	}
}

// get returns a copy of the cached path.
func (pc *pathCache) get(k cacheKey) ([]gridgraph.Node, bool) {
	pc.mu.RLock()
	path, ok := pc.entries[k]
	pc.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return clonePath(path), true
}

// put stores a copy of path under k.
func (pc *pathCache) put(k cacheKey, path []gridgraph.Node) {
	if pc.maxSize <= 0 {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if k.revision < pc.latest {
		return
	}
	if k.revision > pc.latest {
		clear(pc.entries)
		pc.latest = k.revision
	}
	if _, exists := pc.entries[k]; !exists && len(pc.entries) >= pc.maxSize {
		// evict an arbitrary entry
		for old := range pc.entries {
			delete(pc.entries, old)
			break
		}
	}
	pc.entries[k] = clonePath(path)
}

// len returns the number of cached paths.
func (pc *pathCache) len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return len(pc.entries)
}

func clonePath(p []gridgraph.Node) []gridgraph.Node {
	out := make([]gridgraph.Node, len(p))
	copy(out, p)

	return out
}
