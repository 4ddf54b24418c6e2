package websocket

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"pulsedeck-server/internal/config"
	"pulsedeck-server/internal/logger"
	"pulsedeck-server/internal/pkg"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	cfg      *config.Config
	log      logger.Logger
}

func NewHandler(hub *Hub, cfg *config.Config, log logger.Logger) *Handler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")

			allowed := slices.Contains(cfg.AllowedOrigins, origin)
			if !allowed {
				log.Warn("ws: origin rejected", "origin", origin)
			}

			return allowed
		},
	}

	return &Handler{
		hub:      hub,
		upgrader: upgrader,
		cfg:      cfg,
		log:      log,
	}
}

// Serve authenticates via the same access_token cookie the REST routes use;
// browsers cannot attach headers to websocket upgrades.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("access_token")
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := pkg.ValidateToken(cookie.Value, h.cfg.JWTSecret); err != nil {
		h.log.Warn("ws: jwt verification failed", "error", err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws: upgrade failed", "error", err)
		return
	}

	client := NewClient(h.hub, conn, h.log)
	h.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.log.Info("ws: client connected", "remote_addr", conn.RemoteAddr())
}
