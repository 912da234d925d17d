package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/driver"
)

func orderCmd(e *env) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "order [x,y]",
		Short: "Find the order of a point (G by default)",
		Long: `Adds the point to itself until the sum is the identity and prints the
number of additions. Gives up after --order-limit additions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.session.G
			if len(args) == 1 {
				var err error
				if p, err = e.session.ParsePoint(args[0]); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			return driver.Catch(func() error {
				if list {
					driver.Walk(p, e.session.Config.OrderLimit, func(i uint64, m driver.Point) bool {
						fmt.Fprintf(out, "%dG = %v\n", i, m)
						return !m.IsIdentity()
					})
				}

				n, err := driver.Order(p, e.session.Config.OrderLimit)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "the order is %d\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print every multiple up to the identity")
	return cmd
}
