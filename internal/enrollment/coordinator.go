package enrollment

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"outflow/internal/logging"
	"outflow/internal/types"
)

// EngagementProvider answers engagement snapshots for a recipient and step.
// Implementations typically front an email/CRM event store; tests script one.
type EngagementProvider interface {
	Snapshot(ctx context.Context, recipientID string, step types.WorkflowStep) (Engagement, error)
}

// SendFunc delivers one step to one recipient. The coordinator never talks to
// channels itself; it hands send requests to the caller's sink.
type SendFunc func(ctx context.Context, recipientID string, step types.WorkflowStep) error

// Enrollment is one recipient's position in a workflow.
type Enrollment struct {
	RecipientID string     `json:"recipient_id"`
	State       State      `json:"state"`
	StepIndex   int        `json:"step_index"` // 0-based index of the current step
	Engagement  Engagement `json:"engagement"` // last observed snapshot
}

type slot struct {
	mu sync.Mutex // serializes transitions for this recipient
	e  Enrollment
}

// Coordinator advances a fleet of enrollments through one workflow. State is
// arena-indexed by recipient id. Per-recipient transitions are serialized;
// different recipients advance concurrently.
type Coordinator struct {
	workflow *types.Workflow
	provider EngagementProvider
	send     SendFunc

	mu    sync.RWMutex
	slots map[string]*slot
}

// NewCoordinator builds a coordinator for wf. The workflow must have at least
// one step; provider and send must be non-nil.
func NewCoordinator(wf *types.Workflow, provider EngagementProvider, send SendFunc) (*Coordinator, error) {
	if wf == nil || len(wf.Steps) == 0 {
		return nil, types.NewValidationError("workflow", "no steps to execute")
	}
	if provider == nil {
		return nil, types.NewValidationError("provider", "engagement provider is required")
	}
	if send == nil {
		return nil, types.NewValidationError("send", "send sink is required")
	}
	return &Coordinator{
		workflow: wf,
		provider: provider,
		send:     send,
		slots:    make(map[string]*slot),
	}, nil
}

// Enroll registers a recipient at the first step. Enrolling the same
// recipient twice is an error; re-enrollment after completion is a caller
// policy, expressed by enrolling under a fresh id.
func (c *Coordinator) Enroll(recipientID string) error {
	if recipientID == "" {
		return types.NewValidationError("recipient_id", "must not be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.slots[recipientID]; ok {
		return fmt.Errorf("recipient %s already enrolled", recipientID)
	}
	c.slots[recipientID] = &slot{e: Enrollment{
		RecipientID: recipientID,
		State:       StatePending,
	}}
	logging.Enrollment("Enrolled %s in workflow %s", recipientID, c.workflow.ID)
	return nil
}

// Lookup returns a copy of a recipient's enrollment.
func (c *Coordinator) Lookup(recipientID string) (Enrollment, bool) {
	c.mu.RLock()
	s, ok := c.slots[recipientID]
	c.mu.RUnlock()
	if !ok {
		return Enrollment{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e, true
}

// Active returns the ids of enrollments that have not reached a terminal
// state, sorted for deterministic iteration.
func (c *Coordinator) Active() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var ids []string
	for id, s := range c.slots {
		s.mu.Lock()
		terminal := s.e.State.Terminal()
		s.mu.Unlock()
		if !terminal {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Advance runs one full cycle for a recipient: send the current step, collect
// the engagement snapshot, evaluate the step's conditions, and move the
// enrollment to its next position. Advancing a terminal enrollment is a
// no-op that reports the terminal decision again.
func (c *Coordinator) Advance(ctx context.Context, recipientID string) (Decision, error) {
	c.mu.RLock()
	s, ok := c.slots[recipientID]
	c.mu.RUnlock()
	if !ok {
		return Decision{}, fmt.Errorf("recipient %s not enrolled", recipientID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.e.State.Terminal() {
		return Decision{Action: types.ActionEndSequence, State: s.e.State, NextIndex: -1}, nil
	}

	idx := s.e.StepIndex
	step := c.workflow.Steps[idx]

	s.e.State = StateSent
	if err := c.send(ctx, recipientID, step); err != nil {
		// Nothing was delivered; roll back so a retry sees honest state.
		s.e.State = StatePending
		return Decision{}, fmt.Errorf("send step %d to %s: %w", step.Order, recipientID, err)
	}

	s.e.State = StateAwaitingEngagement
	eng, err := c.provider.Snapshot(ctx, recipientID, step)
	if err != nil {
		return Decision{}, fmt.Errorf("engagement for %s at step %d: %w", recipientID, step.Order, err)
	}
	s.e.Engagement = eng

	d := EvaluateStep(c.workflow, idx, eng)
	s.e.State = d.State
	if d.NextIndex >= 0 {
		s.e.StepIndex = d.NextIndex
	}
	logging.EnrollmentDebug("Recipient %s step %d -> %s (action %s, next %d)",
		recipientID, step.Order, d.State, d.Action, d.NextIndex)
	return d, nil
}

// AdvanceAll advances every active enrollment concurrently. Per-recipient
// serialization still holds; the first error cancels the remaining work.
func (c *Coordinator) AdvanceAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range c.Active() {
		id := id
		g.Go(func() error {
			_, err := c.Advance(ctx, id)
			return err
		})
	}
	return g.Wait()
}

// Run drives every enrollment to a terminal state, cycling AdvanceAll until
// nothing is active or the context is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	for len(c.Active()) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.AdvanceAll(ctx); err != nil {
			return err
		}
	}
	return nil
}
