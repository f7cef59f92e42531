package server

import (
	"net/http"

	"cloverfield-server/internal/engine"

	"github.com/go-chi/chi/v5"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Route("/debug", func(r chi.Router) {
		r.Get("/state", h.handleState)
		r.Get("/world", h.handleWorld)
		r.Get("/snapshot", h.handleSnapshot)
	})
}

// /debug/state - полный документ сохранения на последнем тике
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Document())
}

// /debug/world - карта и точки интереса
func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.WorldView())
}

// /debug/snapshot - последний разосланный UPDATE
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}
