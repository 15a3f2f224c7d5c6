package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// runBatches calls fn for every item, size items at a time. The next batch starts only after the
// whole previous batch has returned and delay has passed. fn receives the index of its item so that
// callers can store results in input order.
func runBatches[T any](ctx context.Context, items []T, size int, delay time.Duration, fn func(ctx context.Context, idx int, item T) error) error {
	if size < 1 {
		size = 1
	}

	for start := 0; start < len(items); start += size {
		if start > 0 && delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return goerr.Wrap(ctx.Err(), "batch processing is canceled", goerr.V("processed", start))
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "batch processing is canceled", goerr.V("processed", start))
		}

		end := min(start+size, len(items))
		eg, egCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			eg.Go(func() error {
				return fn(egCtx, i, items[i])
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}

	return nil
}

func (x *UseCase) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if x.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, x.callTimeout)
}
