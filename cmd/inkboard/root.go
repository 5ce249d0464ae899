package main

import (
	"github.com/spf13/cobra"

	"inkboard/internal/config"
	"inkboard/internal/logger"
)

// appContext carries the resolved configuration and logger into the
// subcommands.
type appContext struct {
	cfg config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	ctx := &appContext{}
	var configPath string

	root := &cobra.Command{
		Use:           "inkboard",
		Short:         "Freehand drawing board with undo history and LAN collaboration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: true})
			if err != nil {
				return err
			}
			ctx.cfg = cfg
			ctx.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	root.AddCommand(
		newRunCmd(ctx),
		newHostCmd(ctx),
		newJoinCmd(ctx),
		newExportCmd(ctx),
		newVersionCmd(),
	)
	return root
}
