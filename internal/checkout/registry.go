package checkout

import (
	"sync"
)

// FlowRegistry keeps the in-progress checkout of each user in memory.
// Flows are transient and lost on restart.
type FlowRegistry struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewFlowRegistry() *FlowRegistry {
	return &FlowRegistry{flows: make(map[string]*Flow)}
}

// Get returns a copy of the user's flow.
func (r *FlowRegistry) Get(userID string) (*Flow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flows[userID]
	if !ok {
		return nil, false
	}
	c := *f
	return &c, true
}

func (r *FlowRegistry) Put(f *Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *f
	r.flows[f.UserID] = &c
}

func (r *FlowRegistry) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, userID)
}

// Len reports how many flows are in progress.
func (r *FlowRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}
