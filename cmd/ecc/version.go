package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "development build"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ecc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n Version: %s\n Go version: %s\n OS/Arch: %s/%s\n",
				cmdRoot, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
