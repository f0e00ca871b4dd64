package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// Status is the JSON body of a probe response.
type Status struct {
	// Status is ok, ready or not_ready.
	Status string `json:"status"`
	// Service is the server name from the config.
	Service string `json:"service,omitempty"`
	// Tools is the number of exposed tools.
	Tools int `json:"tools,omitempty"`
}

// Handler serves liveness and readiness probes for the gateway.
type Handler struct {
	service string
	tools   int
	ready   atomic.Bool
}

// New returns a probe handler for the named service exposing tools tools.
func New(service string, tools int) *Handler {
	return &Handler{service: service, tools: tools}
}

// SetReady marks the gateway as accepting tool calls.
func (h *Handler) SetReady() {
	h.ready.Store(true)
}

// SetNotReady marks the gateway as draining.
func (h *Handler) SetNotReady() {
	h.ready.Store(false)
}

// Ready reports whether the gateway accepts tool calls.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}

// Healthz handles liveness probes.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, statusOK)
}

// Readyz handles readiness probes.
func (h *Handler) Readyz(w http.ResponseWriter, _ *http.Request) {
	if h.Ready() {
		h.write(w, http.StatusOK, statusReady)
		return
	}
	h.write(w, http.StatusServiceUnavailable, statusNotReady)
}

func (h *Handler) write(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Status{Status: status, Service: h.service, Tools: h.tools})
}
