// Package campaign synthesizes ready-to-run outreach workflows from briefs.
//
// The assembler orchestrates the channel sequencer, cadence planner, and
// content synthesizer into an ordered step list with default branching. It is
// pure apart from two injectable sources: the randomness behind per-step
// delay draws and the id generator. Everything downstream - resolving
// {{placeholders}}, turning relative delays into send times, delivering
// messages, and walking the branching rules per recipient - belongs to
// external collaborators.
package campaign

import (
	"fmt"
	"time"

	"outflow/internal/catalog"
	"outflow/internal/logging"
	"outflow/internal/types"
)

// defaultStepCount is used when a brief does not specify a step count.
const defaultStepCount = 5

// Step counts a brief may request directly. The intent parser clamps into
// this range; direct API callers get a validation error instead.
const (
	minStepCount = 2
	maxStepCount = 10
)

// Assembler synthesizes workflows against a template catalog.
// Safe for unsynchronized concurrent use only when the injected Rand is;
// the default time-seeded source is not, so callers sharing an Assembler
// across goroutines should inject their own.
type Assembler struct {
	catalog *catalog.Catalog
	rand    Rand
	ids     IDSource
	now     func() time.Time
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithRand injects the randomness source for delay draws.
func WithRand(r Rand) Option {
	return func(a *Assembler) { a.rand = r }
}

// WithIDSource injects the id generator for workflow and step ids.
func WithIDSource(s IDSource) Option {
	return func(a *Assembler) { a.ids = s }
}

// WithClock injects the timestamp source for workflow metadata.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler builds an Assembler over the given catalog.
func NewAssembler(cat *catalog.Catalog, opts ...Option) *Assembler {
	a := &Assembler{
		catalog: cat,
		rand:    defaultRand(),
		ids:     uuidSource{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MatchTemplate returns the catalog template best matching the brief, or nil
// when nothing scores above zero. Exposed for callers that want provenance
// without synthesizing.
func (a *Assembler) MatchTemplate(brief *types.Brief) *types.Template {
	return a.catalog.Match(brief)
}

// Synthesize builds a fresh workflow from the brief.
//
// The catalog matcher runs for provenance metadata only; synthesis always
// builds new steps rather than copying a matched template's. Steps are laid
// out channel-major in precedence order, the first outreach step goes out
// immediately, later steps draw their delay from the brief's cadence, and
// every outreach step past the second gets the default
// "replied -> end sequence" branch.
func (a *Assembler) Synthesize(brief *types.Brief) (*types.Workflow, error) {
	if brief == nil {
		return nil, types.NewValidationError("brief", "brief is required")
	}
	if len(brief.Channels) == 0 {
		return nil, types.NewValidationError("channels", "no channels supplied")
	}
	if brief.StepCount != 0 && (brief.StepCount < minStepCount || brief.StepCount > maxStepCount) {
		return nil, types.NewValidationError("step_count",
			fmt.Sprintf("must be between %d and %d, got %d", minStepCount, maxStepCount, brief.StepCount))
	}

	matched := a.catalog.Match(brief)

	wantsDiscovery := brief.WantsDiscovery() || brief.HasChannel(types.ChannelDiscovery)
	ordered := sequenceChannels(brief.Channels, wantsDiscovery)

	target := brief.StepCount
	if target == 0 {
		target = defaultStepCount
	}

	// Discovery consumes one slot of the target; the rest go to outreach.
	outreachTarget := target
	var outreach []types.Channel
	for _, ch := range ordered {
		if ch.Outreach() {
			outreach = append(outreach, ch)
		}
	}
	if wantsDiscovery {
		outreachTarget--
	}
	assigned := allocateSteps(outreach, outreachTarget)

	policy := policyFor(brief.Cadence)
	steps := make([]types.WorkflowStep, 0, len(assigned)+1)
	order := 1

	if wantsDiscovery {
		steps = append(steps, a.discoveryStep(brief, order))
		order++
	}

	for i, ch := range assigned {
		firstContact := i == 0
		lastStep := i == len(assigned)-1

		delay := 0
		if !firstContact {
			delay = drawDelay(a.rand, policy)
		}

		content := synthesizeContent(ch, brief, firstContact, lastStep)

		var conditions []types.Condition
		// Outreach steps beyond the second get the default stop-on-reply
		// branch; the first two touches always go out.
		if i+1 > 2 {
			conditions = []types.Condition{
				{Trigger: types.TriggerReplied, Action: types.ActionEndSequence},
			}
		}

		steps = append(steps, types.WorkflowStep{
			ID: a.ids.NewID("step"),
			Step: types.Step{
				Order:      order,
				Channel:    ch,
				Delay:      delay,
				DelayUnit:  policy.Unit,
				Subject:    content.Subject,
				Body:       content.Body,
				Conditions: conditions,
			},
		})
		order++
	}

	wf := &types.Workflow{
		ID:          a.ids.NewID("workflow"),
		Name:        brief.Goal,
		Description: describeWorkflow(brief, len(steps)),
		Channels:    distinctChannels(steps),
		Steps:       steps,
		Metadata: types.WorkflowMetadata{
			Brief:         brief,
			Duration:      durationEstimate(steps),
			Difficulty:    difficultyFor(len(steps)),
			SynthesizedAt: a.now(),
		},
	}
	if matched != nil {
		wf.Metadata.MatchedTemplateID = matched.ID
		wf.Metadata.MatchedTemplateName = matched.Name
	}

	logging.Synthesis("Synthesized workflow %s: %d steps, %s, %s",
		wf.ID, len(wf.Steps), wf.Metadata.Duration, wf.Metadata.Difficulty)
	return wf, nil
}

// TemplateOverrides optionally renames a workflow instantiated from a
// template. Zero values keep the template's own name and description.
type TemplateOverrides struct {
	Name        string
	Description string
}

// SynthesizeFromTemplate instantiates a catalog template as a workflow,
// preserving its step count, channel list, and per-step
// delay/channel/content exactly. Only the generated workflow and step ids
// (and the synthesis timestamp) differ between two instantiations.
func (a *Assembler) SynthesizeFromTemplate(templateID string, overrides *TemplateOverrides) (*types.Workflow, error) {
	tpl, err := a.catalog.Get(templateID)
	if err != nil {
		return nil, err
	}

	steps := make([]types.WorkflowStep, 0, len(tpl.Steps))
	for _, s := range tpl.Steps {
		// Detach the conditions slice so workflow mutations cannot reach
		// back into the shared catalog template.
		s.Conditions = append([]types.Condition(nil), s.Conditions...)
		steps = append(steps, types.WorkflowStep{
			ID:   a.ids.NewID("step"),
			Step: s,
		})
	}

	name := tpl.Name
	description := tpl.Description
	if overrides != nil {
		if overrides.Name != "" {
			name = overrides.Name
		}
		if overrides.Description != "" {
			description = overrides.Description
		}
	}

	wf := &types.Workflow{
		ID:          a.ids.NewID("workflow"),
		Name:        name,
		Description: description,
		Channels:    append([]types.Channel(nil), tpl.Channels...),
		Steps:       steps,
		Metadata: types.WorkflowMetadata{
			MatchedTemplateID:   tpl.ID,
			MatchedTemplateName: tpl.Name,
			Duration:            durationEstimate(steps),
			Difficulty:          difficultyFor(len(steps)),
			SynthesizedAt:       a.now(),
		},
	}

	logging.Synthesis("Instantiated template %s as workflow %s", tpl.ID, wf.ID)
	return wf, nil
}

// discoveryStep emits the leading prospect discovery step. The brief's
// search criteria travel verbatim in the config payload; the step never
// carries branching conditions.
func (a *Assembler) discoveryStep(brief *types.Brief, order int) types.WorkflowStep {
	step := types.WorkflowStep{
		ID: a.ids.NewID("step"),
		Step: types.Step{
			Order:     order,
			Channel:   types.ChannelDiscovery,
			Delay:     0,
			DelayUnit: types.DelayDays,
			Body:      discoveryBody(brief),
		},
	}
	if c := brief.Discovery; c != nil {
		step.Config = map[string]any{
			"title":    c.Title,
			"location": c.Location,
			"limit":    c.Limit,
		}
	}
	return step
}

func describeWorkflow(brief *types.Brief, stepCount int) string {
	if brief.Audience != "" {
		return fmt.Sprintf("%d-step synthesized campaign targeting %s", stepCount, brief.Audience)
	}
	return fmt.Sprintf("%d-step synthesized campaign", stepCount)
}

func distinctChannels(steps []types.WorkflowStep) []types.Channel {
	var channels []types.Channel
	seen := make(map[types.Channel]bool)
	for _, s := range steps {
		if !seen[s.Channel] {
			seen[s.Channel] = true
			channels = append(channels, s.Channel)
		}
	}
	return channels
}

// durationEstimate sums step delays and renders them as whole days,
// rounding hour-unit delays up to the day.
func durationEstimate(steps []types.WorkflowStep) string {
	hours := 0
	for _, s := range steps {
		switch s.DelayUnit {
		case types.DelayHours:
			hours += s.Delay
		default:
			hours += s.Delay * 24
		}
	}
	days := (hours + 23) / 24
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// difficultyFor tiers a workflow by its total step count.
func difficultyFor(stepCount int) types.Difficulty {
	switch {
	case stepCount <= 3:
		return types.DifficultyBeginner
	case stepCount <= 6:
		return types.DifficultyIntermediate
	default:
		return types.DifficultyAdvanced
	}
}
