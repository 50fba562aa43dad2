package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/stoplabels/internal/app"
	"github.com/odyssey-erp/stoplabels/internal/labels"
)

type renderOptions struct {
	in             string
	out            string
	date           string
	includeProduct bool
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a manifest to a label PDF without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.in, "in", "", "path to the CSV manifest")
	flags.StringVar(&opts.out, "out", "", "output PDF path (default: manifest name with .pdf)")
	flags.StringVar(&opts.date, "date", "", "delivery date as YYYY-MM-DD (default: today)")
	flags.BoolVar(&opts.includeProduct, "include-product", false, "print the products line")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	date := time.Now()
	if opts.date != "" {
		date, err = time.Parse("2006-01-02", opts.date)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
	}

	renderer, err := labels.NewRenderer(cfg.LabelLayout())
	if err != nil {
		return err
	}

	f, err := os.Open(opts.in)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	doc, err := renderer.RenderCSV(cmd.Context(), f, labels.Options{
		Date:           date.Format(cfg.LabelDateLayout),
		IncludeProduct: opts.includeProduct,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.in, err)
	}

	out := opts.out
	if out == "" {
		out = outputPath(opts.in)
	}
	if err := os.WriteFile(out, doc.PDF, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d labels for %d drivers to %s\n", doc.Pages, doc.Drivers, out)
	return nil
}

// outputPath places the PDF next to the manifest.
func outputPath(in string) string {
	return filepath.Join(filepath.Dir(in), labels.LabelFilename(filepath.Base(in)))
}
