package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ENUM TESTS
// =============================================================================

func TestChannelConstants(t *testing.T) {
	channels := []Channel{
		ChannelDiscovery,
		ChannelConnectionRequest,
		ChannelMessage,
		ChannelEmail,
		ChannelSMS,
		ChannelVoice,
		ChannelVoicemail,
	}

	for _, ch := range channels {
		require.NotEmpty(t, string(ch))
		assert.Equal(t, byte('/'), string(ch)[0], "channel %s should start with /", ch)
	}
}

func TestChannelOutreach(t *testing.T) {
	assert.False(t, ChannelDiscovery.Outreach(), "discovery gathers prospects, it does not message them")
	for _, ch := range []Channel{ChannelEmail, ChannelSMS, ChannelVoice, ChannelConnectionRequest} {
		assert.True(t, ch.Outreach(), "%s should be an outreach channel", ch)
	}
}

func TestCadenceConstants(t *testing.T) {
	for _, c := range []Cadence{CadenceAggressive, CadenceModerate, CadenceGentle} {
		assert.NotEmpty(t, string(c))
	}
}

func TestTriggerAndActionConstants(t *testing.T) {
	triggers := []Trigger{TriggerOpened, TriggerClicked, TriggerReplied, TriggerNotOpened, TriggerNotReplied}
	for _, tr := range triggers {
		require.NotEmpty(t, string(tr))
		assert.Equal(t, byte('/'), string(tr)[0], "trigger %s should start with /", tr)
	}

	actions := []Action{ActionContinue, ActionSkipNext, ActionSwitchChannel, ActionEndSequence}
	for _, a := range actions {
		require.NotEmpty(t, string(a))
		assert.Equal(t, byte('/'), string(a)[0], "action %s should start with /", a)
	}
}

// =============================================================================
// CONDITION VALIDATION
// =============================================================================

func TestConditionValidate(t *testing.T) {
	tests := []struct {
		name    string
		cond    Condition
		wantErr bool
	}{
		{"continue without target", Condition{Trigger: TriggerReplied, Action: ActionContinue}, false},
		{"end_sequence without target", Condition{Trigger: TriggerReplied, Action: ActionEndSequence}, false},
		{"switch_channel with target", Condition{Trigger: TriggerNotOpened, Action: ActionSwitchChannel, Target: ChannelSMS}, false},
		{"switch_channel missing target", Condition{Trigger: TriggerNotOpened, Action: ActionSwitchChannel}, true},
		{"continue with stray target", Condition{Trigger: TriggerOpened, Action: ActionContinue, Target: ChannelEmail}, true},
		{"skip_next with stray target", Condition{Trigger: TriggerOpened, Action: ActionSkipNext, Target: ChannelVoice}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cond.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// TEMPLATE VALIDATION
// =============================================================================

func validTemplate() *Template {
	return &Template{
		ID:       "/tpl_test",
		Name:     "Test",
		Category: CategoryColdOutreach,
		Channels: []Channel{ChannelEmail},
		Steps: []Step{
			{Order: 1, Channel: ChannelEmail, Delay: 0, DelayUnit: DelayDays, Subject: "Hi", Body: "Hello {{first_name}}"},
			{Order: 2, Channel: ChannelEmail, Delay: 3, DelayUnit: DelayDays, Subject: "Re: Hi", Body: "Following up"},
		},
	}
}

func TestTemplateValidateOK(t *testing.T) {
	require.NoError(t, validTemplate().Validate())
}

func TestTemplateValidateOrderGap(t *testing.T) {
	tpl := validTemplate()
	tpl.Steps[1].Order = 3
	assert.Error(t, tpl.Validate(), "non-contiguous step order must be rejected")
}

func TestTemplateValidateNegativeDelay(t *testing.T) {
	tpl := validTemplate()
	tpl.Steps[1].Delay = -1
	assert.Error(t, tpl.Validate())
}

func TestTemplateValidateChannelUnion(t *testing.T) {
	tpl := validTemplate()
	tpl.Channels = []Channel{ChannelEmail, ChannelSMS} // SMS unused by steps
	assert.Error(t, tpl.Validate(), "declared channels must not exceed step channels")

	tpl = validTemplate()
	tpl.Steps[1].Channel = ChannelSMS // SMS used but undeclared
	tpl.Steps[1].Subject = ""
	assert.Error(t, tpl.Validate(), "step channels must not exceed declared channels")
}

func TestTemplateValidateSubjectOnlyOnEmail(t *testing.T) {
	tpl := validTemplate()
	tpl.Channels = []Channel{ChannelEmail, ChannelSMS}
	tpl.Steps = append(tpl.Steps, Step{Order: 3, Channel: ChannelSMS, Delay: 2, DelayUnit: DelayDays, Subject: "nope", Body: "text"})
	assert.Error(t, tpl.Validate(), "subject is an email-only field")
}
