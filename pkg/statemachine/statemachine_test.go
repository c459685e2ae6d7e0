package statemachine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/statemachine"
)

type (
	state string
	event string
)

const (
	draft     state = "draft"
	inReview  state = "in_review"
	approved  state = "approved"
	escalated state = "escalated"

	submit  event = "submit"
	approve event = "approve"
)

type doc struct{ amount float64 }

func TestTableFire(t *testing.T) {
	t.Parallel()

	small := func(_ context.Context, _ state, _ event, data any) bool {
		d, ok := data.(doc)
		return ok && d.amount < 1000
	}

	table := statemachine.MustNew(
		statemachine.Transition[state, event]{From: draft, To: inReview, Event: submit},
		statemachine.Transition[state, event]{From: inReview, To: approved, Event: approve, Guards: []statemachine.Guard[state, event]{small}},
		statemachine.Transition[state, event]{From: inReview, To: escalated, Event: approve},
	)
	ctx := context.Background()

	t.Run("defined transition", func(t *testing.T) {
		t.Parallel()
		next, err := table.Fire(ctx, draft, submit, nil)
		require.NoError(t, err)
		assert.Equal(t, inReview, next)
	})

	t.Run("first passing guard wins", func(t *testing.T) {
		t.Parallel()
		next, err := table.Fire(ctx, inReview, approve, doc{amount: 10})
		require.NoError(t, err)
		assert.Equal(t, approved, next)

		next, err = table.Fire(ctx, inReview, approve, doc{amount: 5000})
		require.NoError(t, err)
		assert.Equal(t, escalated, next)
	})

	t.Run("undefined event keeps state", func(t *testing.T) {
		t.Parallel()
		next, err := table.Fire(ctx, approved, submit, nil)
		assert.Equal(t, approved, next)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.EqualError(t, err, "no transition available from state 'approved' for event 'submit'")
	})

	t.Run("queries", func(t *testing.T) {
		t.Parallel()
		assert.True(t, table.CanFire(ctx, draft, submit, nil))
		assert.False(t, table.CanFire(ctx, draft, approve, nil))
		assert.Equal(t, []event{approve}, table.Events(inReview))
		assert.Empty(t, table.Events(approved))
		assert.True(t, table.Terminal(approved))
		assert.False(t, table.Terminal(draft))
	})
}

func TestTableRejected(t *testing.T) {
	t.Parallel()

	never := func(context.Context, state, event, any) bool { return false }
	table := statemachine.MustNew(statemachine.Transition[state, event]{
		From: draft, To: inReview, Event: submit,
		Guards: []statemachine.Guard[state, event]{nil, never},
	})

	next, err := table.Fire(context.Background(), draft, submit, nil)
	assert.Equal(t, draft, next)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.False(t, statemachine.IsNoTransitionAvailableError(err))
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(
		statemachine.Transition[state, event]{From: draft, To: inReview, Event: submit},
		statemachine.Transition[state, event]{From: draft, Event: approve},
	)
	require.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "transition[1]")

	assert.Panics(t, func() {
		statemachine.MustNew(statemachine.Transition[state, event]{})
	})
}
