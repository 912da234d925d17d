package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check x,y",
		Short: "Report whether a pair of coordinates lies on the curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := e.session.ParseCoordinates(args[0])
			if err != nil {
				return err
			}

			verdict := "is on"
			if !e.session.Curve.Contains(x, y) {
				verdict = "is not on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "(%v, %v) %s %v\n", x, y, verdict, e.session.Curve)
			return nil
		},
	}
}
