package rest

import (
	"net/http"
	"time"

	"pulsedeck-server/internal/config"
	"pulsedeck-server/internal/transport/rest/middleware"
	"pulsedeck-server/internal/transport/websocket"
)

type RouterDeps struct {
	WS      *websocket.Handler
	Metrics *MetricsHandler
	Widgets *WidgetHandler
	Auth    *AuthHandler
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(cfg))

	userStack := middleware.New()
	userStack.Use(middleware.JWT(cfg))

	// HEALTH
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// WEBSOCKET
	mux.HandleFunc("GET /ws", deps.WS.Serve)

	// AUTH
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.Handle("POST /auth/logout", userStack.ThenFunc(deps.Auth.Logout))

	// METRICS
	mux.Handle("GET /api/metrics", userStack.ThenFunc(deps.Metrics.Show))
	mux.Handle("GET /api/widgets", userStack.ThenFunc(deps.Widgets.Show))

	return globalMw.Apply(mux)
}

func NewServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
