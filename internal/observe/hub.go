package observe

import (
	"sort"
	"sync"

	"github.com/vovakirdan/button-smasher/internal/games/smasher"
)

// LocalSession is the id the terminal game publishes under.
const LocalSession = "local"

// SessionView pairs a snapshot with the session that produced it.
type SessionView struct {
	ID       string           `json:"id"`
	Snapshot smasher.Snapshot `json:"snapshot"`
}

// Hub holds the latest snapshot of every live session.
// Game loops publish; HTTP handlers read copies.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]smasher.Snapshot
	last     string
	version  uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]smasher.Snapshot)}
}

// Publish replaces the snapshot of a session.
func (h *Hub) Publish(id string, s smasher.Snapshot) {
	h.mu.Lock()
	h.sessions[id] = s
	h.last = id
	h.version++
	h.mu.Unlock()
}

// Remove forgets a session that ended.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return
	}
	delete(h.sessions, id)
	if h.last == id {
		h.last = ""
	}
	h.version++
}

// Latest returns the most recently published snapshot.
func (h *Hub) Latest() (SessionView, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[h.last]
	if !ok {
		return SessionView{}, false
	}
	return SessionView{ID: h.last, Snapshot: s}, true
}

// Session returns the snapshot of one session.
func (h *Hub) Session(id string) (smasher.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Sessions lists all live sessions ordered by id.
func (h *Hub) Sessions() []SessionView {
	h.mu.RLock()
	views := make([]SessionView, 0, len(h.sessions))
	for id, s := range h.sessions {
		views = append(views, SessionView{ID: id, Snapshot: s})
	}
	h.mu.RUnlock()
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Version increases with every change.
func (h *Hub) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}
