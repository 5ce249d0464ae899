package main

import (
	"github.com/spf13/cobra"

	"inkboard/internal/export"
	"inkboard/internal/ui"
)

func newRunCmd(ctx *appContext) *cobra.Command {
	var loadPath string
	var savePath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a standalone drawing board",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine(ctx.cfg, ctx.log)
			defer eng.Close()
			if err := loadInto(eng, loadPath, ctx.log); err != nil {
				return err
			}

			app := ui.NewApp("Inkboard", eng, ctx.cfg)
			app.Run()

			if savePath != "" {
				return export.SaveHistoryFile(savePath, eng.History())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&loadPath, "load", "", "board JSON file to open")
	cmd.Flags().StringVar(&savePath, "save", "", "board JSON file to write on exit")
	return cmd
}
