package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"inkboard/internal/export"
	"inkboard/internal/render"
)

func newExportCmd(ctx *appContext) *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a saved board file to PDF or PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := export.LoadHistoryFile(input)
			if err != nil {
				return err
			}

			switch strings.ToLower(filepath.Ext(output)) {
			case ".pdf":
				if err := export.SavePDF(output, h); err != nil {
					return err
				}
			case ".png":
				pipeline := render.NewPipeline(ctx.cfg.Width, ctx.cfg.Height, ctx.log)
				img := pipeline.Render(render.Frame{History: h})
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := png.Encode(f, img); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format %q (use .pdf or .png)", output)
			}

			ctx.log.Info(fmt.Sprintf("exported %d strokes to %s", len(h.Strokes), output))
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "board JSON file to read")
	cmd.Flags().StringVar(&output, "output", "", "destination file (.pdf or .png)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}
