package labels

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/odyssey-erp/stoplabels/internal/observability"
	"github.com/odyssey-erp/stoplabels/internal/platform/httpx"
)

// dateInputLayout is the value format of an HTML date input.
const dateInputLayout = "2006-01-02"

// HandlerConfig tunes upload handling.
type HandlerConfig struct {
	MaxUpload  int64
	DateLayout string
}

// Handler serves the upload page and converts posted manifests.
type Handler struct {
	logger    *slog.Logger
	renderer  *Renderer
	static    fs.FS
	metrics   *observability.Metrics
	cfg       HandlerConfig
	validator *validator.Validate
}

// NewHandler constructs a Handler. static must contain index.html.
func NewHandler(logger *slog.Logger, renderer *Renderer, static fs.FS, metrics *observability.Metrics, cfg HandlerConfig) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = 10 << 20
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = "02/01/2006"
	}
	return &Handler{
		logger:    logger,
		renderer:  renderer,
		static:    static,
		metrics:   metrics,
		cfg:       cfg,
		validator: validator.New(),
	}
}

// MountRoutes registers the label routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showUploadForm)
	r.Post("/", h.renderLabels)
}

type uploadForm struct {
	Date           string `validate:"required,datetime=2006-01-02"`
	IncludeProduct bool
}

func (h *Handler) showUploadForm(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, h.static, "index.html")
}

func (h *Handler) renderLabels(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUpload)
	if err := r.ParseMultipartForm(h.cfg.MaxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.RespondError(w, fmt.Errorf("%w: limit is %d bytes", httpx.ErrTooLarge, tooLarge.Limit))
			return
		}
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: file is required", httpx.ErrValidation))
		return
	}
	defer func() { _ = file.Close() }()

	form := uploadForm{
		Date:           r.PostFormValue("date"),
		IncludeProduct: r.PostFormValue("include-product") == "on",
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: date must be YYYY-MM-DD", httpx.ErrValidation))
		return
	}
	date, err := time.Parse(dateInputLayout, form.Date)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
		return
	}

	logger := h.logger.With(
		slog.String("render_id", uuid.NewString()),
		slog.String("upload", header.Filename),
	)
	doc, err := h.renderer.RenderCSV(r.Context(), file, Options{
		Date:           date.Format(h.cfg.DateLayout),
		IncludeProduct: form.IncludeProduct,
	})
	if err != nil {
		h.metrics.RenderFailed()
		if errors.Is(err, ErrNoStops) || errors.Is(err, ErrMissingColumn) {
			logger.Warn("rejected manifest", slog.Any("error", err))
			httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
			return
		}
		logger.Error("render labels", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.metrics.ObserveDocument(doc.Pages)
	logger.Info("labels rendered",
		slog.Int("stops", doc.Pages),
		slog.Int("drivers", doc.Drivers),
		slog.Int("bytes", len(doc.PDF)),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", ContentDisposition(LabelFilename(header.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.PDF)
}
