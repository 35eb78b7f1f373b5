package types

import "fmt"

// Condition is a branching rule attached to a step. The external executor
// evaluates a step's conditions in declared order after the step's
// observation window elapses; the first matching trigger fires its action.
// Target is only meaningful for ActionSwitchChannel.
type Condition struct {
	Trigger Trigger `json:"trigger" yaml:"trigger"`
	Action  Action  `json:"action" yaml:"action"`
	Target  Channel `json:"target,omitempty" yaml:"target,omitempty"`
}

// Validate enforces the switch-channel/target pairing invariant.
func (c Condition) Validate() error {
	if c.Action == ActionSwitchChannel && c.Target == "" {
		return fmt.Errorf("condition %s/%s: switch_channel requires a target channel", c.Trigger, c.Action)
	}
	if c.Action != ActionSwitchChannel && c.Target != "" {
		return fmt.Errorf("condition %s/%s: target %q is only valid for switch_channel", c.Trigger, c.Action, c.Target)
	}
	return nil
}

// Step is one scheduled outreach touch within a template or workflow.
// Delay is relative to the previous step; the first step of any sequence
// has delay 0.
type Step struct {
	Order      int         `json:"order" yaml:"order"`
	Channel    Channel     `json:"channel" yaml:"channel"`
	Delay      int         `json:"delay" yaml:"delay"`
	DelayUnit  DelayUnit   `json:"delay_unit" yaml:"delay_unit"`
	Subject    string      `json:"subject,omitempty" yaml:"subject,omitempty"` // Email only
	Body       string      `json:"body" yaml:"body"`
	Conditions []Condition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// ExpectedMetrics holds hand-authored engagement ranges for a template,
// expressed as display strings ("40-55%"). Purely advisory; the engine never
// computes against them.
type ExpectedMetrics struct {
	OpenRate   string `json:"open_rate,omitempty" yaml:"open_rate,omitempty"`
	ReplyRate  string `json:"reply_rate,omitempty" yaml:"reply_rate,omitempty"`
	Conversion string `json:"conversion,omitempty" yaml:"conversion,omitempty"`
}

// Template is a hand-authored example campaign in the catalog.
//
// Invariants (checked by Validate, enforced at catalog load):
//   - Steps[i].Order is the contiguous sequence 1..N
//   - Channels equals the union of step channels
//   - every condition satisfies Condition.Validate
type Template struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Category    Category        `json:"category" yaml:"category"`
	Channels    []Channel       `json:"channels" yaml:"channels"`
	Duration    string          `json:"duration" yaml:"duration"` // Display estimate, e.g. "14 days"
	Difficulty  Difficulty      `json:"difficulty" yaml:"difficulty"`
	Metrics     ExpectedMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Steps       []Step          `json:"steps" yaml:"steps"`
	Tags        []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Note        string          `json:"note,omitempty" yaml:"note,omitempty"` // Advisory note for operators
}

// Validate checks the template invariants. The catalog refuses to load a
// template that fails validation.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template: missing id")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("template %s: no steps", t.ID)
	}

	seen := make(map[Channel]bool, len(t.Steps))
	for i, s := range t.Steps {
		if s.Order != i+1 {
			return fmt.Errorf("template %s: step %d has order %d, want %d", t.ID, i, s.Order, i+1)
		}
		if s.Delay < 0 {
			return fmt.Errorf("template %s: step %d has negative delay", t.ID, s.Order)
		}
		if s.Subject != "" && s.Channel != ChannelEmail {
			return fmt.Errorf("template %s: step %d carries a subject on non-email channel %s", t.ID, s.Order, s.Channel)
		}
		for _, c := range s.Conditions {
			if err := c.Validate(); err != nil {
				return fmt.Errorf("template %s: step %d: %w", t.ID, s.Order, err)
			}
		}
		seen[s.Channel] = true
	}

	// Channels must be exactly the union of step channels.
	if len(t.Channels) != len(seen) {
		return fmt.Errorf("template %s: channel list has %d entries, steps use %d distinct channels", t.ID, len(t.Channels), len(seen))
	}
	for _, ch := range t.Channels {
		if !seen[ch] {
			return fmt.Errorf("template %s: declared channel %s unused by any step", t.ID, ch)
		}
	}
	return nil
}
