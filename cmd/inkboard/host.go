package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	inet "inkboard/internal/net"
	"inkboard/internal/ui"
)

func newHostCmd(ctx *appContext) *cobra.Command {
	var loadPath string

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Open a board and accept collaborators over the LAN",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine(ctx.cfg, ctx.log)
			defer eng.Close()
			if err := loadInto(eng, loadPath, ctx.log); err != nil {
				return err
			}

			hub := inet.NewHub(ctx.log)
			inet.NewHostSession(eng, hub, ctx.log)

			mux := http.NewServeMux()
			mux.Handle(inet.EndpointPath, hub)
			go func() {
				addr := fmt.Sprintf(":%d", ctx.cfg.Port)
				if err := http.ListenAndServe(addr, mux); err != nil {
					ctx.log.Error(err, "relay server stopped")
				}
			}()

			if server, err := inet.Advertise(ctx.cfg.Port); err != nil {
				ctx.log.Warn("mDNS advertise failed: " + err.Error())
			} else {
				defer server.Shutdown()
			}

			app := ui.NewApp("Inkboard (hosting)", eng, ctx.cfg)
			if ip, err := inet.OutgoingIP(); err == nil {
				app.SetStatus(fmt.Sprintf("Hosting on %s:%d", ip, ctx.cfg.Port))
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&loadPath, "load", "", "board JSON file to open")
	return cmd
}
