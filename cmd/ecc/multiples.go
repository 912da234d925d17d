package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/driver"
)

func multiplesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "multiples n",
		Short: "Print G, 2G, ..., nG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := driver.ParseScalar(args[0])
			if err != nil {
				return err
			}
			if n.Sign() < 0 || !n.IsUint64() || n.Uint64() > e.session.Config.OrderLimit {
				return errors.Errorf("n must be in [0, %d], got %s", e.session.Config.OrderLimit, n)
			}

			out := cmd.OutOrStdout()
			return driver.Catch(func() error {
				for i, p := range driver.Multiples(e.session.G, n.Uint64()) {
					fmt.Fprintf(out, "%dG = %v\n", i+1, p)
				}
				return nil
			})
		},
	}
}
