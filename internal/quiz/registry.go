package quiz

import "sync"

// Registry maps Telegram user ids to their sessions. Sessions are created
// lazily on first contact and live for the process lifetime.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session

	repo Repository
	cfg  Config
}

// NewRegistry builds an empty session registry backed by the repository.
func NewRegistry(repo Repository, cfg Config) *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
		repo:     repo,
		cfg:      cfg,
	}
}

// GetOrCreate returns the user's session, creating an idle one on first use.
func (r *Registry) GetOrCreate(uid int64) *Session {
	r.mu.RLock()
	s, ok := r.sessions[uid]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[uid]; ok {
		return s
	}
	s = NewSession(uid, r.repo, r.cfg)
	r.sessions[uid] = s
	return s
}

// Remove drops the user's session, if any.
func (r *Registry) Remove(uid int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, uid)
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
