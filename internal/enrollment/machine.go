// Package enrollment implements the per-recipient branching contract for
// synthesized workflows: the finite-state machine an executor walks for each
// recipient, and a reference in-memory coordinator that runs a fleet of
// enrollments concurrently.
//
// Engagement data is consumed, never computed: an EngagementProvider answers
// "opened/clicked/replied" per recipient and step. Wall-clock scheduling of
// observation windows also lives outside; callers advance an enrollment when
// a window elapses or an engagement event arrives early.
package enrollment

import (
	"outflow/internal/types"
)

// State is a recipient's position in the branching state machine.
type State string

const (
	StatePending            State = "/pending"             // Enrolled, nothing sent yet
	StateSent               State = "/sent"                // Current step handed to the sender
	StateAwaitingEngagement State = "/awaiting_engagement" // Observation window open
	StateContinuing         State = "/continuing"          // Moving to the next step
	StateSkipped            State = "/skipped"             // Next step was skipped
	StateChannelSwitched    State = "/channel_switched"    // Rerouted to a later step on another channel
	StateEnded              State = "/ended"               // A condition ended the sequence (terminal, non-error)
	StateCompleted          State = "/completed"           // Ran off the end of the step list (terminal)
)

// Terminal reports whether the state admits no further transitions.
// Ended and Completed are both valid, idempotent terminal outcomes; external
// cancellation is equivalent to simply not advancing an enrollment again.
func (s State) Terminal() bool {
	return s == StateEnded || s == StateCompleted
}

// Engagement is a snapshot of observed recipient behavior for one step.
type Engagement struct {
	Opened  bool `json:"opened"`
	Clicked bool `json:"clicked"`
	Replied bool `json:"replied"`
}

// Matches reports whether the snapshot satisfies a trigger.
func (e Engagement) Matches(tr types.Trigger) bool {
	switch tr {
	case types.TriggerOpened:
		return e.Opened
	case types.TriggerClicked:
		return e.Clicked
	case types.TriggerReplied:
		return e.Replied
	case types.TriggerNotOpened:
		return !e.Opened
	case types.TriggerNotReplied:
		return !e.Replied
	default:
		return false
	}
}

// Decision is the outcome of evaluating one step's conditions.
type Decision struct {
	// Action is the branching action that fired. ActionContinue when no
	// condition matched.
	Action types.Action
	// State is the resulting enrollment state.
	State State
	// NextIndex is the 0-based index of the next step to send, or -1 when
	// the decision is terminal.
	NextIndex int
}

// EvaluateStep evaluates the conditions of wf.Steps[stepIndex] against an
// engagement snapshot.
//
// Conditions are checked strictly in declared order and the first matching
// trigger fires; when a snapshot satisfies several triggers at once (opened
// and clicked are frequently both true), declaration order is the only
// priority there is. No match means the default "continue".
//
// switch_channel reroutes to the next subsequent step whose channel equals
// the target, skipping the steps in between; with no such step ahead, the
// enrollment completes. Running continue or skip_next off the end of the
// list also completes.
func EvaluateStep(wf *types.Workflow, stepIndex int, eng Engagement) Decision {
	step := wf.Steps[stepIndex]

	action := types.ActionContinue
	target := types.Channel("")
	for _, c := range step.Conditions {
		if eng.Matches(c.Trigger) {
			action = c.Action
			target = c.Target
			break
		}
	}

	switch action {
	case types.ActionEndSequence:
		return Decision{Action: action, State: StateEnded, NextIndex: -1}

	case types.ActionSkipNext:
		next := stepIndex + 2
		if next >= len(wf.Steps) {
			return Decision{Action: action, State: StateCompleted, NextIndex: -1}
		}
		return Decision{Action: action, State: StateSkipped, NextIndex: next}

	case types.ActionSwitchChannel:
		for j := stepIndex + 1; j < len(wf.Steps); j++ {
			if wf.Steps[j].Channel == target {
				return Decision{Action: action, State: StateChannelSwitched, NextIndex: j}
			}
		}
		// No subsequent step on the target channel: natural end.
		return Decision{Action: action, State: StateCompleted, NextIndex: -1}

	default: // ActionContinue, matched or defaulted
		next := stepIndex + 1
		if next >= len(wf.Steps) {
			return Decision{Action: types.ActionContinue, State: StateCompleted, NextIndex: -1}
		}
		return Decision{Action: types.ActionContinue, State: StateContinuing, NextIndex: next}
	}
}
