// Package api exposes the auction engine over HTTP: auction lifecycle
// endpoints, a health probe, and Prometheus metrics.
package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bidwell/auctiond/engine"
)

// New returns the api router as a handler func.
func New(manager *engine.Manager, allowedOrigins string) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(allowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	NewAuctions(manager).
		Mount(router, "/auctions")

	router.Path("/metrics").Handler(promhttp.Handler())
	router.Path("/healthz").Methods(http.MethodGet).HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			_ = WriteJSON(w, map[string]string{"status": "ok"})
		})

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}))(router).ServeHTTP
}
