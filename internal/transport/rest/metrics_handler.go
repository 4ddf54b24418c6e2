// Package rest
package rest

import (
	"net/http"

	"pulsedeck-server/internal/storage/snapshot"
)

type MetricsHandler struct {
	store *snapshot.MetricsStore
}

func NewMetricsHandler(store *snapshot.MetricsStore) *MetricsHandler {
	return &MetricsHandler{store: store}
}

func (h *MetricsHandler) Show(w http.ResponseWriter, r *http.Request) {
	JSONSuccess(w, http.StatusOK, APIResponse{Data: h.store.Get()})
}
