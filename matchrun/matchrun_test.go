package matchrun_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hqurve/tokmatch/matcher"
	"github.com/hqurve/tokmatch/matchrun"
	"github.com/hqurve/tokmatch/predicate"
	"github.com/hqurve/tokmatch/result"
	"github.com/hqurve/tokmatch/token"
)

func TestParseAllRunsEveryJobAndPreservesOrder(t *testing.T) {
	p := matcher.TokenMatch(predicate.Kind(token.Label))

	jobs := make([]matchrun.Job, 50)
	for i := range jobs {
		if i%2 == 0 {
			jobs[i] = matchrun.Job{Tokens: []token.Token{token.NewLabel("x")}}
		} else {
			jobs[i] = matchrun.Job{Tokens: []token.Token{token.NewSymbol(';')}}
		}
	}

	outcomes, err := matchrun.ParseAll(context.Background(), p, jobs, 4)
	require.NoError(t, err)
	require.Len(t, outcomes, len(jobs))
	for i, o := range outcomes {
		if i%2 == 0 {
			require.True(t, o.Matched)
			require.True(t, result.AsToken(o.Result).Equal(token.NewLabel("x")))
		} else {
			require.False(t, o.Matched)
		}
	}
}

func TestParseAllUsesEachJobsOwnFlags(t *testing.T) {
	p := matcher.FixedValue(matcher.TokenMatch(predicate.Any()), func(flags matcher.Flags) int {
		return flags.(int)
	})

	jobs := []matchrun.Job{
		{Tokens: []token.Token{token.NewLabel("a")}, Flags: 1},
		{Tokens: []token.Token{token.NewLabel("b")}, Flags: 2},
		{Tokens: []token.Token{token.NewLabel("c")}, Flags: 3},
	}

	outcomes, err := matchrun.ParseAll(context.Background(), p, jobs, 0)
	require.NoError(t, err)
	for i, o := range outcomes {
		require.True(t, o.Matched)
		require.Equal(t, i+1, result.AsValue[int](o.Result))
	}
}

func TestParseAllOnEmptyJobsReturnsEmptySlice(t *testing.T) {
	p := matcher.Empty()
	outcomes, err := matchrun.ParseAll(context.Background(), p, nil, 0)
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestParseAllRespectsAlreadyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := matcher.Empty()
	jobs := []matchrun.Job{{Tokens: nil}}

	_, err := matchrun.ParseAll(ctx, p, jobs, 0)
	require.Error(t, err)
}
