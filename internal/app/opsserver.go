package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vk/strgraphgo/internal/compiled"
	"github.com/vk/strgraphgo/internal/metrics"
	"github.com/vk/strgraphgo/internal/schema"
)

// executeRequest is the /execute body: a graph description document plus
// an optional feed dictionary.
type executeRequest struct {
	schema.Description
	Feed map[string]string `json:"feed,omitempty"`
}

// executeResponse is the /execute reply.
type executeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// opsRouter builds the ops HTTP surface: liveness, prometheus metrics,
// and a one-shot execute endpoint speaking the JSON description contract.
func (a *App) opsRouter(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		a.logger.Debug("Health check endpoint hit.", "remote_addr", req.RemoteAddr, "path", req.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	r.Post("/execute", func(w http.ResponseWriter, req *http.Request) {
		a.handleExecute(ctx, w, req)
	})

	return r
}

// handleExecute compiles the posted document and computes its target.
func (a *App) handleExecute(ctx context.Context, w http.ResponseWriter, req *http.Request) {
	var body executeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, executeResponse{Error: fmt.Sprintf("malformed request body: %v", err)})
		return
	}
	if body.TargetNode == "" {
		writeJSON(w, http.StatusBadRequest, executeResponse{Error: "document missing 'target_node' field"})
		return
	}

	cg, err := compiled.New(ctx, &body.Description, a.registry)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, executeResponse{Error: err.Error()})
		return
	}
	value, err := cg.RunAuto(ctx, body.TargetNode, body.Feed)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, executeResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, executeResponse{Result: value})
}

func writeJSON(w http.ResponseWriter, status int, body executeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// startOpsServer runs the ops HTTP server in the background.
func (a *App) startOpsServer(ctx context.Context, port int) {
	a.logger.Debug("Configuring ops server.")
	addr := fmt.Sprintf(":%d", port)
	handler := a.opsRouter(ctx)

	go func() {
		a.logger.Info("🩺 Ops server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := http.ListenAndServe(addr, handler); err != nil {
			a.logger.Error("Ops server failed", "error", err)
		}
	}()
}
