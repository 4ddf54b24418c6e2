package rest

import (
	"net/http"

	"pulsedeck-server/internal/core/widget"
	"pulsedeck-server/internal/storage/snapshot"
)

type WidgetHandler struct {
	store *snapshot.MetricsStore
	svc   *widget.Service
}

func NewWidgetHandler(store *snapshot.MetricsStore, svc *widget.Service) *WidgetHandler {
	return &WidgetHandler{store: store, svc: svc}
}

func (h *WidgetHandler) Show(w http.ResponseWriter, r *http.Request) {
	board := h.svc.Build(h.store.Get())
	JSONSuccess(w, http.StatusOK, APIResponse{Data: board})
}
