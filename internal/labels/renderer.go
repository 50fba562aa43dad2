package labels

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PointsPerInch converts inches to PDF user units.
const PointsPerInch = 72.0

// Layout describes the fixed geometry of a label page in points.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	// Margin is applied on both the left and right edge.
	Margin float64
	// TopOffset is the distance from the top edge to the first baseline.
	TopOffset  float64
	FontFamily string
	FontSize   float64
	LineHeight float64
}

// DefaultLayout is a 4"x6" label with Courier 12 on a quarter-inch grid.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  4 * PointsPerInch,
		PageHeight: 6 * PointsPerInch,
		Margin:     0.25 * PointsPerInch,
		TopOffset:  0.5 * PointsPerInch,
		FontFamily: "Courier",
		FontSize:   12,
		LineHeight: 0.25 * PointsPerInch,
	}
}

// Validate checks that text still fits horizontally on the page.
func (l Layout) Validate() error {
	switch {
	case l.PageWidth <= 0 || l.PageHeight <= 0:
		return errors.New("labels: page size must be positive")
	case l.Margin < 0 || 2*l.Margin >= l.PageWidth:
		return fmt.Errorf("labels: margin %.2fpt leaves no text width", l.Margin)
	case l.TopOffset <= 0 || l.TopOffset >= l.PageHeight:
		return fmt.Errorf("labels: top offset %.2fpt outside page", l.TopOffset)
	case l.FontSize <= 0 || l.LineHeight <= 0:
		return errors.New("labels: font size and line height must be positive")
	case l.FontFamily == "":
		return errors.New("labels: font family required")
	}
	return nil
}

// TextWidth is the maximum width of a line before it wraps.
func (l Layout) TextWidth() float64 {
	return l.PageWidth - 2*l.Margin
}

// Document is a rendered label set.
type Document struct {
	PDF     []byte
	Pages   int
	Drivers int
}

// Renderer draws label documents. It holds only immutable layout settings;
// every call builds its own PDF so a Renderer is safe for concurrent use.
type Renderer struct {
	layout  Layout
	creator string
	now     func() time.Time
}

// NewRenderer constructs a Renderer for layout.
func NewRenderer(layout Layout) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{layout: layout, creator: "stoplabels", now: time.Now}, nil
}

// Layout returns the page geometry used by the renderer.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// RenderCSV parses a manifest and renders one label per data row.
func (r *Renderer) RenderCSV(ctx context.Context, csvData io.Reader, opts Options) (*Document, error) {
	stops, err := ParseStops(csvData)
	if err != nil {
		return nil, err
	}
	totals := CountByDriver(stops)
	pdf, err := r.render(ctx, stops, totals, opts)
	if err != nil {
		return nil, err
	}
	return &Document{PDF: pdf, Pages: len(stops), Drivers: totals.Drivers()}, nil
}

// Render draws one page per stop, in slice order.
func (r *Renderer) Render(ctx context.Context, stops []Stop, opts Options) ([]byte, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	return r.render(ctx, stops, CountByDriver(stops), opts)
}

func (r *Renderer) render(ctx context.Context, stops []Stop, totals DriverTotals, opts Options) ([]byte, error) {
	l := r.layout
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetMargins(l.Margin, l.TopOffset, l.Margin)
	// Wrapped text must never spill onto an extra page.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(r.creator, true)
	pdf.SetCreationDate(r.now())
	pdf.SetFont(l.FontFamily, "", l.FontSize)

	// MultiCell centres text vertically in each row; shift the block up so
	// the first baseline lands on TopOffset.
	top := l.TopOffset - (l.LineHeight/2 + 0.3*l.FontSize)

	for i, stop := range stops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.AddPage()
		pdf.SetXY(l.Margin, top)
		text := strings.Join(Lines(stop, totals, opts), "\n")
		pdf.MultiCell(l.TextWidth(), l.LineHeight, winAnsi(text), "", "L", false)
		if pdf.Err() {
			return nil, fmt.Errorf("render stop %d: %w", i+1, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
