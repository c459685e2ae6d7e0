package statemachine

import (
	"context"
	"slices"
)

// Guard evaluates whether a transition should be allowed based on runtime data.
type Guard[S, E ~string] func(ctx context.Context, from S, event E, data any) bool

// Transition moves a record from From to To when Event fires and every guard passes.
type Transition[S, E ~string] struct {
	From   S
	To     S
	Event  E
	Guards []Guard[S, E]
}

// Table is an immutable transition table. It holds no current state: records
// keep their own state and ask the table where an event leads.
type Table[S, E ~string] struct {
	transitions map[S]map[E][]Transition[S, E]
}

// New builds a table. Several transitions may share From and Event; the
// first one whose guards pass wins.
func New[S, E ~string](transitions ...Transition[S, E]) (*Table[S, E], error) {
	t := &Table[S, E]{transitions: make(map[S]map[E][]Transition[S, E])}
	for i, tr := range transitions {
		if tr.From == "" || tr.To == "" || tr.Event == "" {
			return nil, NewErrInvalidTransition(i)
		}
		if _, ok := t.transitions[tr.From]; !ok {
			t.transitions[tr.From] = make(map[E][]Transition[S, E])
		}
		t.transitions[tr.From][tr.Event] = append(t.transitions[tr.From][tr.Event], tr)
	}
	return t, nil
}

// MustNew panics on an invalid table. Tables are package-level definitions,
// so a failure is a programming error.
func MustNew[S, E ~string](transitions ...Transition[S, E]) *Table[S, E] {
	t, err := New(transitions...)
	if err != nil {
		panic(err)
	}
	return t
}

// Fire returns the state that event leads to from the given state.
func (t *Table[S, E]) Fire(ctx context.Context, from S, event E, data any) (S, error) {
	candidates, ok := t.transitions[from][event]
	if !ok || len(candidates) == 0 {
		return from, NewErrNoTransitionAvailable(string(from), string(event))
	}

	for _, tr := range candidates {
		if passes(ctx, tr, data) {
			return tr.To, nil
		}
	}
	return from, NewErrTransitionRejected(string(from), string(event))
}

func (t *Table[S, E]) CanFire(ctx context.Context, from S, event E, data any) bool {
	_, err := t.Fire(ctx, from, event, data)
	return err == nil
}

// Events lists the events defined for from, sorted. Guards are not evaluated.
func (t *Table[S, E]) Events(from S) []E {
	events := make([]E, 0, len(t.transitions[from]))
	for event := range t.transitions[from] {
		events = append(events, event)
	}
	slices.Sort(events)
	return events
}

// Terminal reports whether no event leaves s.
func (t *Table[S, E]) Terminal(s S) bool {
	return len(t.transitions[s]) == 0
}

func passes[S, E ~string](ctx context.Context, tr Transition[S, E], data any) bool {
	for _, guard := range tr.Guards {
		if guard != nil && !guard(ctx, tr.From, tr.Event, data) {
			return false
		}
	}
	return true
}
