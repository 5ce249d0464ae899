package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags.
var version = "0.3.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the inkboard version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("inkboard " + version)
		},
	}
}
