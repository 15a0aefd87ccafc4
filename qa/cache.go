// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package qa

import (
	"log/slog"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/poiesic/clausewise/index"
	"github.com/poiesic/clausewise/storage"
)

// counterMultiplier follows the ristretto guidance of keeping roughly
// 10x as many frequency counters as cached entries.
const counterMultiplier = 10

// documentEntry holds the indexed form of one document.
type documentEntry struct {
	index *index.Hybrid
	store storage.SegmentStore
}

func (e *documentEntry) close() {
	if err := e.index.Close(); err != nil {
		slog.Default().Error("error closing hybrid index", "err", err)
	}
	if err := e.store.Close(); err != nil {
		slog.Default().Error("error closing segment store", "err", err)
	}
}

// documentCache keeps indexed documents keyed by content hash, so
// repeated requests over the same document skip segmentation and
// embedding. Each entry costs 1; eviction releases the entry's index and
// store.
type documentCache struct {
	cache *ristretto.Cache[string, *documentEntry]
}

func newDocumentCache(maxEntries int64) (*documentCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *documentEntry]{
		NumCounters: maxEntries * counterMultiplier,
		MaxCost:     maxEntries,
		BufferItems: 64,
		OnEvict: func(item *ristretto.Item[*documentEntry]) {
			item.Value.close()
		},
	})
	if err != nil {
		return nil, err
	}
	return &documentCache{cache: cache}, nil
}

func (c *documentCache) get(key string) (*documentEntry, bool) {
	return c.cache.Get(key)
}

// put stores an entry and waits for it to settle so a follow-up get in
// the same request sees it.
func (c *documentCache) put(key string, entry *documentEntry) {
	c.cache.Set(key, entry, 1)
	c.cache.Wait()
}

func (c *documentCache) close() {
	c.cache.Close()
}
