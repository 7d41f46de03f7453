package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"

	"match-feed-service/internal/domain"
	"match-feed-service/internal/poller"
)

// StateSource exposes the poller's subscribable refresh state.
type StateSource interface {
	State() poller.State
	Status() poller.Status
}

// Handler wires HTTP routes to the domain service and refresh state.
type Handler struct {
	svc    *domain.Service
	state  StateSource
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *domain.Service, state StateSource, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		state:  state,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poller has produced a recent snapshot.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.state == nil || !h.state.Status().IsReady() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]string{"status": "starting"})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Matches returns the current merged match list plus the refresh state.
// Optional query filters: league, source, live=true.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	matches := h.svc.Matches()
	matches = filterMatches(matches, r.URL.Query().Get("league"), r.URL.Query().Get("source"), r.URL.Query().Get("live"))

	resp := domain.ListResponse{Matches: matches}
	if h.state != nil {
		state := h.state.State()
		resp.Loading = state.Loading
		resp.Error = state.Err
	}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

// MatchByID returns a specific match if present.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	// Expect path: /matches/{id}
	id := strings.TrimPrefix(r.URL.Path, "/matches/")
	if id == "" || strings.Contains(id, "/") {
		h.writeError(w, nethttp.StatusBadRequest, "missing match id")
		return
	}

	match, ok := h.svc.MatchByID(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}

	h.writeJSON(w, nethttp.StatusOK, match)
}

func filterMatches(matches []domain.Match, league, source, live string) []domain.Match {
	if league == "" && source == "" && live == "" {
		return matches
	}

	filtered := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if league != "" && !strings.EqualFold(m.League, league) {
			continue
		}
		if source != "" && !strings.EqualFold(string(m.Source), source) {
			continue
		}
		if live == "true" && !m.IsLive {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
