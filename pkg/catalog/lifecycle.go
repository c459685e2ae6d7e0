package catalog

import (
	"context"

	"github.com/medisupply/fieldkit/pkg/statemachine"
)

type OrderEvent string

const (
	OrderProcess OrderEvent = "process"
	OrderShip    OrderEvent = "ship"
	OrderDeliver OrderEvent = "deliver"
	OrderCancel  OrderEvent = "cancel"
)

type VisitEvent string

const (
	VisitStart    VisitEvent = "start"
	VisitComplete VisitEvent = "complete"
	VisitCancel   VisitEvent = "cancel"
)

type orderTransition = statemachine.Transition[OrderStatus, OrderEvent]

// Orders cannot be cancelled once shipped.
var orderLifecycle = statemachine.MustNew(
	orderTransition{From: OrderPending, To: OrderProcessing, Event: OrderProcess},
	orderTransition{From: OrderProcessing, To: OrderShipped, Event: OrderShip,
		Guards: []statemachine.Guard[OrderStatus, OrderEvent]{hasItems}},
	orderTransition{From: OrderShipped, To: OrderDelivered, Event: OrderDeliver},
	orderTransition{From: OrderPending, To: OrderCancelled, Event: OrderCancel},
	orderTransition{From: OrderProcessing, To: OrderCancelled, Event: OrderCancel},
)

type visitTransition = statemachine.Transition[VisitStatus, VisitEvent]

var visitLifecycle = statemachine.MustNew(
	visitTransition{From: VisitPending, To: VisitInProgress, Event: VisitStart},
	visitTransition{From: VisitInProgress, To: VisitCompleted, Event: VisitComplete},
	visitTransition{From: VisitPending, To: VisitCancelled, Event: VisitCancel},
	visitTransition{From: VisitInProgress, To: VisitCancelled, Event: VisitCancel},
)

func hasItems(_ context.Context, _ OrderStatus, _ OrderEvent, data any) bool {
	o, ok := data.(*Order)
	return ok && len(o.Items) > 0
}

// Fire moves the order along its lifecycle. The status is unchanged on error.
func (o *Order) Fire(ctx context.Context, event OrderEvent) error {
	next, err := orderLifecycle.Fire(ctx, o.Status, event, o)
	if err != nil {
		return err
	}
	o.Status = next
	return nil
}

// Events lists what can happen to the order next.
func (o Order) Events() []OrderEvent {
	return orderLifecycle.Events(o.Status)
}

// Closed reports whether the order reached delivered or cancelled.
func (o Order) Closed() bool {
	return orderLifecycle.Terminal(o.Status)
}

func (v *Visit) Fire(ctx context.Context, event VisitEvent) error {
	next, err := visitLifecycle.Fire(ctx, v.Status, event, v)
	if err != nil {
		return err
	}
	v.Status = next
	return nil
}

func (v Visit) Events() []VisitEvent {
	return visitLifecycle.Events(v.Status)
}

func (v Visit) Closed() bool {
	return visitLifecycle.Terminal(v.Status)
}
