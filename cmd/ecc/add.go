package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/driver"
)

func addCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add P Q [R...]",
		Short: "Add points given as x,y or inf",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]driver.Point, len(args))
			for i, arg := range args {
				p, err := e.session.ParsePoint(arg)
				if err != nil {
					return err
				}
				points[i] = p
			}

			return driver.Catch(func() error {
				sum := e.session.Curve.Identity()
				for _, p := range points {
					sum = sum.Add(p)
				}
				fmt.Fprintln(cmd.OutOrStdout(), sum)
				return nil
			})
		},
	}
}
