package main

import (
	"errors"

	"github.com/spf13/cobra"

	inet "inkboard/internal/net"
	"inkboard/internal/ui"
)

func newJoinCmd(ctx *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [host:port]",
		Short: "Join a board hosted on the LAN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := ""
			if len(args) == 1 {
				addr = args[0]
			} else {
				found, err := discoverHost()
				if err != nil {
					return err
				}
				addr = found
			}

			client, err := inet.Dial(addr, ctx.log)
			if err != nil {
				return err
			}
			defer client.Close()

			eng := newEngine(ctx.cfg, ctx.log)
			defer eng.Close()
			inet.NewClientSession(eng, client, ctx.log)
			go client.Listen()

			app := ui.NewApp("Inkboard (joined "+addr+")", eng, ctx.cfg)
			client.OnDisconnect = func(error) {
				app.SetStatus("Disconnected from host")
			}
			app.SetStatus("Connected to " + addr)
			app.Run()
			return nil
		},
	}
	return cmd
}

// discoverHost runs one mDNS lookup and picks the first advertised host.
func discoverHost() (string, error) {
	var addr string
	if err := inet.Browse(func(a string) {
		if addr == "" {
			addr = a
		}
	}); err != nil {
		return "", err
	}
	if addr == "" {
		return "", errors.New("no board host found on the local network")
	}
	return addr, nil
}
