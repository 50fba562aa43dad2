package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/odyssey-erp/stoplabels/internal/labels"
	"github.com/odyssey-erp/stoplabels/internal/observability"
	"github.com/odyssey-erp/stoplabels/web"
)

// Handlers are the assembled HTTP entry points.
type Handlers struct {
	Public http.Handler
	Ops    http.Handler
}

// Build assembles the label service from cfg.
func Build(cfg *Config, logger *slog.Logger) (*Handlers, error) {
	renderer, err := labels.NewRenderer(cfg.LabelLayout())
	if err != nil {
		return nil, fmt.Errorf("label renderer: %w", err)
	}
	static, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	metrics := observability.NewMetrics()
	labelsHandler := labels.NewHandler(logger, renderer, static, metrics, labels.HandlerConfig{
		MaxUpload:  cfg.LabelMaxUpload,
		DateLayout: cfg.LabelDateLayout,
	})
	return &Handlers{
		Public: NewRouter(RouterParams{
			Logger:        logger,
			Config:        cfg,
			LabelsHandler: labelsHandler,
			Metrics:       metrics,
		}),
		Ops: NewOpsRouter(metrics),
	}, nil
}
