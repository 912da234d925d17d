package curve

import (
	"context"
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScalarMulBatch computes ks[i]·p for every scalar concurrently, with at
// most GOMAXPROCS multiplications in flight. The result at index i
// corresponds to ks[i]. It stops early and returns the context error if ctx
// is cancelled. A nil scalar is reported as ErrNilScalar before any work
// starts.
func ScalarMulBatch[T Field[T]](ctx context.Context, p Point[T], ks []*big.Int) ([]Point[T], error) {
	for i, k := range ks {
		if k == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilScalar, i)
		}
	}

	results := make([]Point[T], len(ks))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, k := range ks {
		i, k := i, k
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.ScalarMul(k)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
