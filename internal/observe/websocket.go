package observe

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

func (h *handlers) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if originAllowed(origin, h.origins) {
				return true
			}
			h.logger.Warn("websocket rejected", "origin", origin)
			h.metrics.rejectConnection("origin")
			return false
		},
	}
}

// handleWS streams the latest snapshot to a spectator whenever it changes,
// at most once per stream interval.
func (h *handlers) handleWS(w http.ResponseWriter, r *http.Request) {
	if !h.upgrades.Allow() {
		h.metrics.rejectConnection("rate_limit")
		http.Error(w, "too many connections", http.StatusTooManyRequests)
		return
	}

	up := h.upgrader()
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	h.metrics.clientConnected()
	h.logger.Info("spectator connected", "remote", r.RemoteAddr)
	defer func() {
		conn.Close()
		h.metrics.clientDisconnected()
		h.logger.Info("spectator disconnected", "remote", r.RemoteAddr)
	}()

	// Spectators never send anything meaningful; reading detects close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var sent uint64
	for {
		if v := h.hub.Version(); v != sent {
			if view, ok := h.hub.Latest(); ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(view); err != nil {
					return
				}
				h.metrics.messageSent()
			}
			sent = v
		}
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
