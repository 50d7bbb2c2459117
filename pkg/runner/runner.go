// Package runner fans formatting of independent comment blocks out over a
// worker pool and joins the results in original block order.
package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/turadg/jsdocfmt/pkg/codefmt"
	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
	"github.com/turadg/jsdocfmt/pkg/layout"
)

// Runner formats batches of tag blocks concurrently. Blocks share no
// mutable state, so the only coordination is the final ordered join.
type Runner struct {
	Formatter codefmt.Formatter
	Logger    *log.Logger
}

// New creates a Runner with the given delegate formatter. A nil formatter
// selects codefmt.Default.
func New(formatter codefmt.Formatter, logger *log.Logger) *Runner {
	if formatter == nil {
		formatter = codefmt.Default{}
	}
	return &Runner{Formatter: formatter, Logger: logger}
}

type outcome struct {
	index int
	body  string
}

// FormatBlocks renders every block and returns the bodies in input order.
// Each block either formats or degrades to verbatim text; the only error is
// context cancellation at the dispatch boundary.
func (r *Runner) FormatBlocks(
	ctx context.Context,
	blocks []jsdoc.Block,
	opts *config.Options,
) ([]string, error) {
	if opts == nil {
		opts = config.Default()
	}
	if len(blocks) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(blocks) {
		jobs = len(blocks)
	}

	workCh := make(chan int)
	outCh := make(chan outcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, blocks, opts, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for i := range blocks {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Ordered join: results land at their original index regardless of
	// completion order.
	results := make([]string, len(blocks))
	for out := range outCh {
		results[out.index] = out.body
	}

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("format cancelled: %w", err)
	}
	return results, nil
}

func (r *Runner) worker(
	ctx context.Context,
	blocks []jsdoc.Block,
	opts *config.Options,
	workCh <-chan int,
	outCh chan<- outcome,
) {
	for i := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		body := layout.FormatBlock(blocks[i], opts, r.Formatter, r.Logger)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome{index: i, body: body}:
		}
	}
}
