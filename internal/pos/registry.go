package pos

import "sync"

// Registry maps session ids to their terminals.
type Registry struct {
	mu        sync.RWMutex
	terminals map[string]*Terminal
}

func NewRegistry() *Registry {
	return &Registry{terminals: make(map[string]*Terminal)}
}

func (r *Registry) Get(sessionID string) (*Terminal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.terminals[sessionID]
	return t, ok
}

func (r *Registry) Put(sessionID string, t *Terminal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminals[sessionID] = t
}

// LoadOrStore returns the terminal already registered for sessionID, or
// registers t. loaded reports whether an existing terminal was returned.
func (r *Registry) LoadOrStore(sessionID string, t *Terminal) (actual *Terminal, loaded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.terminals[sessionID]; ok {
		return existing, true
	}
	r.terminals[sessionID] = t
	return t, false
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.terminals, sessionID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.terminals)
}
