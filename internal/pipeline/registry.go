package pipeline

import (
	"sort"
	"sync"

	"salesboard/internal/dataset"
	"salesboard/internal/model"
)

// Entry is one ingested dataset held in memory: the cleaned data plus what
// cleaning did to it. Summaries are not stored here; they are recomputed
// from the dataset and the caller's filter state.
type Entry struct {
	Meta    model.DatasetMeta
	Dataset *dataset.Dataset
	Report  model.CleanReport
}

// Registry holds the cleaned datasets of the running process, keyed by ID.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Put stores an entry, replacing any previous dataset with the same ID.
func (r *Registry) Put(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Meta.ID] = e
}

// Get returns the entry for an ID, or nil when unknown.
func (r *Registry) Get(id string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}

// Delete removes an entry. Returns whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[id]
	delete(r.entries, id)
	return ok
}

// List returns all entry metadata, newest first.
func (r *Registry) List() []model.DatasetMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	metas := make([]model.DatasetMeta, 0, len(r.entries))
	for _, e := range r.entries {
		metas = append(metas, e.Meta)
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt.After(metas[j].CreatedAt) })
	return metas
}
