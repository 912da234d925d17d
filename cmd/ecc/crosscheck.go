package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/driver"
)

func crosscheckCmd(e *env) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "crosscheck [k...]",
		Short: "Compare generic k·G on secp256k1 against the native implementation",
		Long: `Runs the generic group law over the secp256k1 base field and compares
k·G with the result of github.com/decred/dcrd/dcrec/secp256k1. Without
arguments, --count random scalars are checked. The configured curve is not
used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ks []*big.Int
			for _, arg := range args {
				k, err := driver.ParseScalar(arg)
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}
			for len(args) == 0 && len(ks) < count {
				k, err := curves.RandomScalar(curves.Secp256k1Order())
				if err != nil {
					return err
				}
				ks = append(ks, k)
			}

			out := cmd.OutOrStdout()
			return driver.Catch(func() error {
				for _, k := range ks {
					p, err := curves.CrossCheckSecp256k1(k)
					if err != nil {
						e.logger.Error("cross check failed", zap.Stringer("k", k), zap.Error(err))
						return err
					}
					e.logger.Debug("cross check passed", zap.Stringer("k", k), zap.Stringer("point", p))
					fmt.Fprintf(out, "ok %s\n", k.Text(16))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&count, "count", 4, "number of random scalars to check")
	return cmd
}
