package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/policy"
	"github.com/viant/fsm/progress"
	"github.com/viant/fsm/source"
)

func symbolIs(value string) Predicate[string] {
	return func(symbol string) bool { return symbol == value }
}

// roundTrip builds the two-state machine used throughout: a(start) and
// b(final) with a->a on "0", a->b on "1", b->b on "1" and b->a on "0".
func roundTrip(t *testing.T, options ...Option[string]) *Engine[string] {
	a := model.NewState("a").WithStart()
	b := model.NewState("b").WithFinal()

	e := New[string](options...)
	assert.NoError(t, e.AddStates(a, b))
	assert.NoError(t, e.AddTransitions(
		NewTransition[string](a, a, symbolIs("0")),
		NewTransition[string](a, b, symbolIs("1")),
		NewTransition[string](b, b, symbolIs("1")),
		NewTransition[string](b, a, symbolIs("0")),
	))
	return e
}

func TestRunAccepts(t *testing.T) {
	e := roundTrip(t)
	accepted, err := e.Run(context.Background(), source.NewSlice("1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, accepted)
	assert.Equal(t, "b", e.Current().ID)
}

func TestRunAcceptsWholeWord(t *testing.T) {
	input := []string{"0", "0", "1", "1", "0", "1"}
	e := roundTrip(t)
	accepted, err := e.Run(context.Background(), source.NewSlice(input...))
	assert.NoError(t, err)
	assert.Equal(t, input, accepted)
}

func TestRunNotAcceptedInNonFinalState(t *testing.T) {
	e := roundTrip(t)
	accepted, err := e.Run(context.Background(), source.NewSlice("1", "1", "0"))

	var notAccepted *NotAcceptedError
	assert.True(t, errors.As(err, &notAccepted))
	assert.Equal(t, "a", notAccepted.StateID)
	assert.Equal(t, 3, notAccepted.Accepted)
	// the accepted prefix is still returned for diagnostics
	assert.Equal(t, []string{"1", "1", "0"}, accepted)
}

func TestRunRejectsUnknownSymbol(t *testing.T) {
	e := roundTrip(t)
	accepted, err := e.Run(context.Background(), source.NewSlice("1", "x"))

	var noMatch *NoMatchingTransitionError
	assert.True(t, errors.As(err, &noMatch))
	assert.Equal(t, "b", noMatch.StateID)
	assert.Equal(t, "x", noMatch.Symbol)
	assert.Equal(t, 1, noMatch.Accepted)
	assert.Equal(t, []string{"1"}, accepted)
}

func TestRunRejectsInFinalState(t *testing.T) {
	// rejection is independent of whether the current state is final
	e := roundTrip(t)
	_, err := e.Run(context.Background(), source.NewSlice("1", "x", "1"))
	var noMatch *NoMatchingTransitionError
	assert.True(t, errors.As(err, &noMatch))
}

func TestRunEmptyInput(t *testing.T) {
	// empty input in a non-final start state is not accepted
	e := roundTrip(t)
	_, err := e.Run(context.Background(), source.NewSlice[string]())
	var notAccepted *NotAcceptedError
	assert.True(t, errors.As(err, &notAccepted))
	assert.Equal(t, 0, notAccepted.Accepted)

	// but is accepted when the start state is also final
	both := New[string]()
	assert.NoError(t, both.AddState(model.NewState("s").WithStart().WithFinal()))
	accepted, err := both.Run(context.Background(), source.NewSlice[string]())
	assert.NoError(t, err)
	assert.Empty(t, accepted)
}

func TestDuplicateState(t *testing.T) {
	e := New[string]()
	assert.NoError(t, e.AddState(model.NewState("a").WithStart()))
	err := e.AddState(model.NewState("a").WithFinal())
	var duplicate *model.DuplicateStateError
	assert.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "a", duplicate.ID)
}

func TestValidate(t *testing.T) {
	a := model.NewState("a")
	final := model.NewState("f").WithFinal()

	t.Run("no start state", func(t *testing.T) {
		e := New[string]()
		assert.NoError(t, e.AddStates(a, final))
		_, err := e.Run(context.Background(), source.NewSlice("1"))
		assert.True(t, errors.Is(err, model.ErrNoStartState))
	})

	t.Run("multiple start states", func(t *testing.T) {
		e := New[string]()
		assert.NoError(t, e.AddStates(
			model.NewState("s1").WithStart(),
			model.NewState("s2").WithStart(),
			final,
		))
		_, err := e.Run(context.Background(), source.NewSlice("1"))
		var multiple *model.MultipleStartStatesError
		assert.True(t, errors.As(err, &multiple))
		assert.Equal(t, []string{"s1", "s2"}, multiple.IDs)
	})

	t.Run("no final state", func(t *testing.T) {
		e := New[string]()
		assert.NoError(t, e.AddStates(model.NewState("s").WithStart(), a))
		_, err := e.Run(context.Background(), source.NewSlice("1"))
		assert.True(t, errors.Is(err, model.ErrNoFinalState))
	})

	t.Run("unknown endpoint surfaces at run", func(t *testing.T) {
		e := New[string]()
		start := model.NewState("s").WithStart().WithFinal()
		assert.NoError(t, e.AddState(start))
		// registration succeeds, the check is deferred to Validate
		assert.NoError(t, e.AddTransition(NewTransition[string](start, model.NewState("ghost"), symbolIs("1"))))
		_, err := e.Run(context.Background(), source.NewSlice("1"))
		var unknown *model.UnknownStateError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, "ghost", unknown.StateID)
		assert.Equal(t, "target", unknown.Side)
	})

	t.Run("validation happens before any symbol is read", func(t *testing.T) {
		e := New[string]()
		reads := 0
		src := source.Func[string](func(ctx context.Context) (string, error) {
			reads++
			return "1", nil
		})
		_, err := e.Run(context.Background(), src)
		assert.Error(t, err)
		assert.Equal(t, 0, reads)
	})
}

func TestFirstMatchPolicy(t *testing.T) {
	a := model.NewState("a").WithStart()
	b := model.NewState("b").WithFinal()
	c := model.NewState("c").WithFinal()

	e := New[string]()
	assert.NoError(t, e.AddStates(a, b, c))
	// both transitions accept "1"; the earlier registered one must win
	assert.NoError(t, e.AddTransitions(
		NewTransition[string](a, b, symbolIs("1")),
		NewTransition[string](a, c, symbolIs("1")),
	))

	_, err := e.Run(context.Background(), source.NewSlice("1"))
	assert.NoError(t, err)
	assert.Equal(t, "b", e.Current().ID)
}

func TestDeterminism(t *testing.T) {
	input := []string{"1", "0", "1", "1"}
	var outcomes [][]string
	for i := 0; i < 5; i++ {
		e := roundTrip(t)
		accepted, err := e.Run(context.Background(), source.NewSlice(input...))
		assert.NoError(t, err)
		outcomes = append(outcomes, accepted)
	}
	for _, outcome := range outcomes {
		assert.Equal(t, outcomes[0], outcome)
	}
}

func TestHooks(t *testing.T) {
	var trace []string
	e := roundTrip(t,
		WithPreTransit[string](func(ctx context.Context, symbol string) {
			trace = append(trace, "pre:"+symbol)
		}),
		WithPostTransit[string](func(ctx context.Context, symbol string) {
			trace = append(trace, "post:"+symbol)
		}),
	)

	_, err := e.Run(context.Background(), source.NewSlice("0", "1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"pre:0", "post:0", "pre:1", "post:1"}, trace)
}

func TestHooksOnRejectedSymbol(t *testing.T) {
	// pre fires for the rejected symbol, post does not - the failure
	// occurs at the matching step between the two
	var pre, post int
	e := roundTrip(t,
		WithPreTransit[string](func(ctx context.Context, symbol string) { pre++ }),
		WithPostTransit[string](func(ctx context.Context, symbol string) { post++ }),
	)

	_, err := e.Run(context.Background(), source.NewSlice("1", "x"))
	var noMatch *NoMatchingTransitionError
	assert.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 2, pre)
	assert.Equal(t, 1, post)
}

type recordingHooks struct {
	trace []string
}

func (h *recordingHooks) OnPreTransit(_ context.Context, symbol string) {
	h.trace = append(h.trace, "pre:"+symbol)
}

func (h *recordingHooks) OnPostTransit(_ context.Context, symbol string) {
	h.trace = append(h.trace, "post:"+symbol)
}

func TestWithHooks(t *testing.T) {
	hooks := &recordingHooks{}
	e := roundTrip(t, WithHooks[string](hooks))
	_, err := e.Run(context.Background(), source.NewSlice("1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"pre:1", "post:1"}, hooks.trace)
}

func TestRunReuse(t *testing.T) {
	e := roundTrip(t)
	accepted, err := e.Run(context.Background(), source.NewSlice("1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, accepted)

	// a second run starts from the start state again
	accepted, err = e.Run(context.Background(), source.NewSlice("0", "1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, accepted)
}

func TestSourceErrorAbortsRun(t *testing.T) {
	boom := fmt.Errorf("symbol source failed")
	e := roundTrip(t)
	calls := 0
	src := source.Func[string](func(ctx context.Context) (string, error) {
		calls++
		if calls > 1 {
			return "", boom
		}
		return "1", nil
	})
	accepted, err := e.Run(context.Background(), src)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"1"}, accepted)
}

func TestRunUpdatesProgress(t *testing.T) {
	e := roundTrip(t)
	ctx, tracker := progress.WithNewTracker(context.Background(), "", e.Name(), nil)
	_, err := e.Run(ctx, source.NewSlice("1", "x"))
	assert.Error(t, err)

	snapshot := tracker.Snapshot()
	assert.Equal(t, 2, snapshot.SymbolsRead)
	assert.Equal(t, 1, snapshot.SymbolsAccepted)
	assert.Equal(t, 1, snapshot.Transitions)
}

func TestNilSource(t *testing.T) {
	e := roundTrip(t)
	_, err := e.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunPolicy(t *testing.T) {
	t.Run("symbol limit", func(t *testing.T) {
		e := roundTrip(t)
		ctx := policy.WithPolicy(context.Background(), &policy.Policy{MaxSymbols: 2})
		accepted, err := e.Run(ctx, source.NewText("011"))
		var limit *SymbolLimitError
		assert.True(t, errors.As(err, &limit))
		assert.Equal(t, 2, limit.Limit)
		assert.Equal(t, []string{"0", "1"}, accepted)
	})
	t.Run("blocked symbol", func(t *testing.T) {
		e := roundTrip(t)
		ctx := policy.WithPolicy(context.Background(), &policy.Policy{BlockList: []string{"0"}})
		accepted, err := e.Run(ctx, source.NewText("10"))
		var blocked *BlockedSymbolError
		assert.True(t, errors.As(err, &blocked))
		assert.Equal(t, "b", blocked.StateID)
		assert.Equal(t, []string{"1"}, accepted)
	})
	t.Run("no policy in context", func(t *testing.T) {
		e := roundTrip(t)
		_, err := e.Run(context.Background(), source.NewText("01"))
		assert.NoError(t, err)
	})
}

func TestGenericSymbols(t *testing.T) {
	// the engine is generic over the symbol domain
	even := model.NewState("even").WithStart().WithFinal()
	odd := model.NewState("odd")

	e := New[int]()
	assert.NoError(t, e.AddStates(even, odd))
	assert.NoError(t, e.AddTransitions(
		NewTransition[int](even, odd, func(symbol int) bool { return symbol%2 == 1 }),
		NewTransition[int](even, even, func(symbol int) bool { return symbol%2 == 0 }),
		NewTransition[int](odd, even, func(symbol int) bool { return symbol%2 == 1 }),
		NewTransition[int](odd, odd, func(symbol int) bool { return symbol%2 == 0 }),
	))

	accepted, err := e.Run(context.Background(), source.NewSlice(1, 2, 3))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, accepted)
	assert.Equal(t, "even", e.Current().ID)
}
