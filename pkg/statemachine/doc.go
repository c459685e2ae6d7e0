// Package statemachine provides immutable transition tables for records
// whose status is a string type.
//
// A Table does not track a current state. Each record stores its own status
// and asks the table where an event leads, so one package-level table can
// serve every order or visit concurrently:
//
//	type Status string
//	type Event string
//
//	var lifecycle = statemachine.MustNew(
//	    statemachine.Transition[Status, Event]{From: "pending", To: "shipped", Event: "ship"},
//	)
//
//	next, err := lifecycle.Fire(ctx, order.Status, "ship", order)
//
// Guards veto a transition based on the data passed to Fire. When several
// transitions share From and Event, the first whose guards all pass wins.
//
// Fire errors can be told apart with IsNoTransitionAvailableError (the event
// is not defined for the state) and IsTransitionRejectedError (a guard said
// no).
package statemachine
