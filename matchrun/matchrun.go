// Package matchrun is a thin batch-parsing convenience layered over
// package matcher: running many independent parses against one shared
// parser tree concurrently. It touches none of the backtracking core —
// spec §5 only forbids two goroutines sharing one matcher Instance, not
// running independently-owned parses of the same read-only Parser tree at
// the same time — so ParseAll is just matcher.Parse fanned out across
// goroutines, in the style bufbuild-protocompile uses errgroup for its own
// concurrent batch work.
package matchrun

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hqurve/tokmatch/matcher"
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

// Job is one independent parse request: its own token slice and its own
// flags value, both run against a parser tree shared with every other Job
// in the same batch.
type Job struct {
	Tokens []token.Token
	Flags  matcher.Flags
}

// Outcome is one Job's result. Outcome order matches the Jobs slice
// ParseAll was given, regardless of completion order.
type Outcome struct {
	Result  result.Result
	Matched bool
}

// ParseAll runs p against every job in jobs concurrently, each via the
// ordinary single-threaded matcher.Parse, and collects their Outcomes in
// input order. maxConcurrency bounds how many parses run at once; 0 means
// unbounded.
//
// If ctx is cancelled before a job starts, that job is skipped (its
// Outcome is left at the zero value) and ParseAll returns ctx's error
// alongside the partial results gathered so far.
func ParseAll(ctx context.Context, p matcher.Parser, jobs []Job, maxConcurrency int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))

	grp, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		grp.SetLimit(maxConcurrency)
	}

	for i, job := range jobs {
		i, job := i, job
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, matched := matcher.Parse(p, job.Tokens, job.Flags)
			outcomes[i] = Outcome{Result: r, Matched: matched}
			return nil
		})
	}

	err := grp.Wait()
	return outcomes, err
}
