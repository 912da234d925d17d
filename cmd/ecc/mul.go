package main

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/internal/driver"
	"github.com/smallyu/go-weierstrass/pkg/curve"
)

func mulCmd(e *env) *cobra.Command {
	var (
		point string
		naive bool
	)

	cmd := &cobra.Command{
		Use:   "mul k [k...]",
		Short: "Multiply a point (G by default) by one or more scalars",
		Long: `Computes k·P for every scalar k with double-and-add. Scalars may be
negative, decimal or 0x-prefixed hexadecimal, and of any size. Several
scalars are multiplied concurrently. Results are labelled kG for the base
point and kP for a point given with --point.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, label := e.session.G, "G"
			if point != "" {
				var err error
				if p, err = e.session.ParsePoint(point); err != nil {
					return err
				}
				label = "P"
			}

			ks := make([]*big.Int, len(args))
			for i, arg := range args {
				k, err := driver.ParseScalar(arg)
				if err != nil {
					return err
				}
				if naive && (k.Sign() < 0 || k.Cmp(new(big.Int).SetUint64(e.session.Config.OrderLimit)) > 0) {
					return errors.Errorf("--naive needs a scalar in [0, %d], got %s", e.session.Config.OrderLimit, k)
				}
				ks[i] = k
			}

			out := cmd.OutOrStdout()
			return driver.Catch(func() error {
				var results []driver.Point
				if naive {
					for _, k := range ks {
						results = append(results, p.ScalarMulNaive(k.Uint64()))
					}
				} else {
					var err error
					if results, err = curve.ScalarMulBatch(cmd.Context(), p, ks); err != nil {
						return errors.Wrap(err, "scalar multiplication")
					}
				}

				for i, r := range results {
					fmt.Fprintf(out, "%s%s = %v\n", ks[i], label, r)
				}
				e.logger.Debug("scalar multiplication done")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&point, "point", "", "point to multiply as x,y (default G)")
	cmd.Flags().BoolVar(&naive, "naive", false, "use repeated addition, bounded by --order-limit")
	return cmd
}
