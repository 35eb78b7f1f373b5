// Package types defines the shared domain model for outflow: channels,
// cadences, tones, templates, briefs, and synthesized workflows.
//
// Everything in this package is plain data. Templates are load-time constants
// owned by the catalog; a Brief is built per request and discarded; a
// Workflow is produced once per synthesis call and handed off to the external
// executor, never mutated afterward.
package types

// Channel represents the communication medium of an outreach step.
type Channel string

const (
	ChannelDiscovery         Channel = "/discovery"          // Prospect discovery search (no message sent)
	ChannelConnectionRequest Channel = "/connection_request" // Professional-network connection request
	ChannelMessage           Channel = "/message"            // Professional-network direct message
	ChannelEmail             Channel = "/email"              // Email (only channel carrying a subject line)
	ChannelSMS               Channel = "/sms"                // Text message
	ChannelVoice             Channel = "/voice"              // Live phone call
	ChannelVoicemail         Channel = "/voicemail"          // Voicemail drop
)

// Outreach reports whether the channel delivers a message to a recipient,
// as opposed to discovery which only gathers prospects.
func (c Channel) Outreach() bool {
	return c != ChannelDiscovery
}

// Cadence represents the timing aggressiveness between consecutive steps.
type Cadence string

const (
	CadenceAggressive Cadence = "/aggressive" // 1-2 days between steps
	CadenceModerate   Cadence = "/moderate"   // 2-4 days between steps
	CadenceGentle     Cadence = "/gentle"     // 3-7 days between steps
)

// Tone represents the voice used when synthesizing step content.
type Tone string

const (
	ToneProfessional Tone = "/professional"
	ToneCasual       Tone = "/casual"
	ToneFriendly     Tone = "/friendly"
	ToneDirect       Tone = "/direct"
)

// DelayUnit is the unit of a step's relative delay.
type DelayUnit string

const (
	DelayHours DelayUnit = "/hours"
	DelayDays  DelayUnit = "/days"
)

// Difficulty tiers a campaign by how much operator attention it demands.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "/beginner"     // 3 steps or fewer
	DifficultyIntermediate Difficulty = "/intermediate" // 4-6 steps
	DifficultyAdvanced     Difficulty = "/advanced"     // 7+ steps
)

// Category classifies a catalog template. Closed set.
type Category string

const (
	CategoryColdOutreach  Category = "/cold_outreach"
	CategoryRecruiting    Category = "/recruiting"
	CategoryFundraising   Category = "/fundraising"
	CategoryPartnership   Category = "/partnership"
	CategoryEvent         Category = "/event"
	CategoryReEngagement  Category = "/re_engagement"
	CategoryProductLaunch Category = "/product_launch"
	CategoryNetworking    Category = "/networking"
)

// Trigger is an engagement observation evaluated against a step's conditions.
type Trigger string

const (
	TriggerOpened     Trigger = "/opened"
	TriggerClicked    Trigger = "/clicked"
	TriggerReplied    Trigger = "/replied"
	TriggerNotOpened  Trigger = "/not_opened"
	TriggerNotReplied Trigger = "/not_replied"
)

// Action is the branching action fired when a condition's trigger matches.
type Action string

const (
	ActionContinue      Action = "/continue"       // Proceed to the next step
	ActionSkipNext      Action = "/skip_next"      // Skip the immediately following step
	ActionSwitchChannel Action = "/switch_channel" // Jump forward to the next step on the target channel
	ActionEndSequence   Action = "/end_sequence"   // Stop the sequence for this recipient (terminal, non-error)
)
