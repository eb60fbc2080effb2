package purchase

import (
	"context"
	"fmt"

	"github.com/qmuntal/stateless"
)

// State is a step of a single purchase attempt.
type State string

const (
	StateIdle               State = "Idle"
	StateAwaitingPhoneInput State = "AwaitingPhoneInput"
	StateRequestInFlight    State = "RequestInFlight"
	StateSucceeded          State = "Succeeded"
	StateFailed             State = "Failed"
)

type trigger string

const (
	triggerPrompt   trigger = "prompt"
	triggerAbort    trigger = "abort"
	triggerSubmit   trigger = "submit"
	triggerAccepted trigger = "accepted"
	triggerRejected trigger = "rejected"
	triggerReset    trigger = "reset"
)

type machine struct {
	sm    *stateless.StateMachine
	trail []State
}

func newMachine() *machine {
	m := &machine{
		sm:    stateless.NewStateMachine(StateIdle),
		trail: []State{StateIdle},
	}

	m.sm.Configure(StateIdle).
		Permit(triggerPrompt, StateAwaitingPhoneInput)
	m.sm.Configure(StateAwaitingPhoneInput).
		Permit(triggerSubmit, StateRequestInFlight).
		Permit(triggerAbort, StateIdle)
	m.sm.Configure(StateRequestInFlight).
		Permit(triggerAccepted, StateSucceeded).
		Permit(triggerRejected, StateFailed)
	m.sm.Configure(StateSucceeded).
		Permit(triggerReset, StateIdle)
	m.sm.Configure(StateFailed).
		Permit(triggerReset, StateIdle)

	m.sm.OnTransitioned(func(_ context.Context, t stateless.Transition) {
		m.trail = append(m.trail, t.Destination.(State))
	})

	return m
}

func (m *machine) fire(ctx context.Context, t trigger) error {
	if err := m.sm.FireCtx(ctx, t); err != nil {
		return fmt.Errorf("purchase state %v: %w", m.sm.MustState(), err)
	}
	return nil
}
