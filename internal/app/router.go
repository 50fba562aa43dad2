package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/stoplabels/internal/labels"
	"github.com/odyssey-erp/stoplabels/internal/observability"
	"github.com/odyssey-erp/stoplabels/internal/platform/httpx"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger        *slog.Logger
	Config        *Config
	LabelsHandler *labels.Handler
	Metrics       *observability.Metrics
}

// NewRouter constructs the public router. Only / is routed; every other
// path is 404 and unsupported methods on / are 405.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)

	params.LabelsHandler.MountRoutes(r)

	return r
}

// NewOpsRouter serves health and metrics on the internal listener.
func NewOpsRouter(metrics *observability.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}
