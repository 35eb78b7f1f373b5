package types

import "time"

// WorkflowStep is one executable step within a synthesized workflow. It
// extends Step with a generated unique id and an optional opaque config
// payload (discovery steps carry their search criteria here).
type WorkflowStep struct {
	ID     string         `json:"id" yaml:"id"`
	Step   `yaml:",inline"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// WorkflowMetadata records the provenance of a synthesized workflow: which
// catalog template (if any) matched the brief, the brief itself, and the
// computed duration and difficulty.
type WorkflowMetadata struct {
	MatchedTemplateID   string     `json:"matched_template_id,omitempty" yaml:"matched_template_id,omitempty"`
	MatchedTemplateName string     `json:"matched_template_name,omitempty" yaml:"matched_template_name,omitempty"`
	Brief               *Brief     `json:"brief,omitempty" yaml:"brief,omitempty"`
	Duration            string     `json:"duration" yaml:"duration"`
	Difficulty          Difficulty `json:"difficulty" yaml:"difficulty"`
	SynthesizedAt       time.Time  `json:"synthesized_at" yaml:"synthesized_at"`
}

// Workflow is a synthesized, ready-to-run campaign instance. The engine
// produces it once and hands it off; resolution of {{placeholder}} tokens,
// wall-clock scheduling of delays, and actual delivery all belong to
// external collaborators.
type Workflow struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Channels    []Channel        `json:"channels" yaml:"channels"`
	Steps       []WorkflowStep   `json:"steps" yaml:"steps"`
	Metadata    WorkflowMetadata `json:"metadata" yaml:"metadata"`
}
