package codecx

import (
	"context"
	"runtime"

	"github.com/kanengo/kuid/basex"
	"github.com/kanengo/kuid/basex/recoveryx"
	"github.com/kanengo/kuid/contextx"
	"golang.org/x/sync/errgroup"
)

type batchOption struct {
	concurrency int
}

type BatchOption func(*batchOption)

// WithConcurrency bounds the number of items processed at once. n <= 0 keeps
// the default of GOMAXPROCS.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOption) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// EncodeMany encodes every input with c. Results are in input order and
// carry their own error; one failure does not stop the others.
func EncodeMany(ctx context.Context, c Codec, inputs [][]uint64, opts ...BatchOption) []basex.Result[string] {
	return runMany(ctx, inputs, c.Encode, opts)
}

// DecodeMany is the decoding counterpart of EncodeMany.
func DecodeMany(ctx context.Context, c Codec, inputs []string, opts ...BatchOption) []basex.Result[[]uint64] {
	return runMany(ctx, inputs, c.Decode, opts)
}

func runMany[In, Out any](ctx context.Context, inputs []In, fn func(In) (Out, error), opts []BatchOption) []basex.Result[Out] {
	options := &batchOption{
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := contextx.Logger(ctx)
	results := make([]basex.Result[Out], len(inputs))

	// item errors live in results, so the group itself never fails and
	// never cancels its siblings.
	var g errgroup.Group
	g.SetLimit(options.concurrency)

	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			results[i] = basex.ResultError[Out](err)
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = basex.ResultError[Out](err)
				return nil
			}

			var out Out
			err := recoveryx.Do(func() (err error) {
				out, err = fn(in)
				return err
			})
			if err != nil {
				logger.Debug("batch item failed", "index", i, "err", err)
			}
			results[i] = basex.ResultTuple(out, err)
			return nil
		})
	}
	_ = g.Wait()

	logger.Debug("batch done", "items", len(inputs), "concurrency", options.concurrency)
	return results
}
