package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisupply/fieldkit/pkg/catalog"
	"github.com/medisupply/fieldkit/pkg/statemachine"
)

func TestOrderLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()
		order := &catalog.Order{Status: catalog.OrderPending, Items: []catalog.OrderItem{{ProductID: "p-1", Quantity: 1}}}

		assert.Equal(t, []catalog.OrderEvent{catalog.OrderCancel, catalog.OrderProcess}, order.Events())
		for _, event := range []catalog.OrderEvent{catalog.OrderProcess, catalog.OrderShip, catalog.OrderDeliver} {
			require.NoError(t, order.Fire(ctx, event))
		}
		assert.Equal(t, catalog.OrderDelivered, order.Status)
		assert.True(t, order.Closed())
		assert.Empty(t, order.Events())
	})

	t.Run("no cancel after shipping", func(t *testing.T) {
		t.Parallel()
		order := &catalog.Order{Status: catalog.OrderShipped}
		err := order.Fire(ctx, catalog.OrderCancel)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, catalog.OrderShipped, order.Status)
	})

	t.Run("empty order cannot ship", func(t *testing.T) {
		t.Parallel()
		order := &catalog.Order{Status: catalog.OrderProcessing}
		err := order.Fire(ctx, catalog.OrderShip)
		assert.True(t, statemachine.IsTransitionRejectedError(err))
		assert.Equal(t, catalog.OrderProcessing, order.Status)
	})
}

func TestVisitLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	visit := &catalog.Visit{Status: catalog.VisitPending}
	require.NoError(t, visit.Fire(ctx, catalog.VisitStart))
	assert.Equal(t, catalog.VisitInProgress, visit.Status)
	assert.False(t, visit.Closed())

	assert.Error(t, visit.Fire(ctx, catalog.VisitStart))
	require.NoError(t, visit.Fire(ctx, catalog.VisitCancel))
	assert.Equal(t, catalog.VisitCancelled, visit.Status)
	assert.True(t, visit.Closed())
}
