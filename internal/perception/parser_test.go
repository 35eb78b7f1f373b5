package perception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outflow/internal/types"
)

func TestParseIntentNoIntent(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"what is the weather today",
		"show me my inbox",
	} {
		assert.Nil(t, ParseIntent(text), "expected no intent for %q", text)
	}
}

func TestParseIntentDeterministic(t *testing.T) {
	text := "generate an aggressive 5 step email campaign for marketing directors"
	first := ParseIntent(text)
	second := ParseIntent(text)
	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestParseIntentDefaults(t *testing.T) {
	brief := ParseIntent("start an outreach campaign")
	require.NotNil(t, brief)

	assert.Equal(t, "Cold outreach campaign", brief.Goal)
	assert.Equal(t, []types.Channel{types.ChannelEmail}, brief.Channels)
	assert.Equal(t, types.CadenceModerate, brief.Cadence)
	assert.Equal(t, types.ToneProfessional, brief.Tone)
	assert.Zero(t, brief.StepCount)
	assert.Empty(t, brief.Audience)
	assert.Nil(t, brief.Discovery)
}

func TestParseIntentChannels(t *testing.T) {
	tests := []struct {
		text string
		want []types.Channel
	}{
		{
			"send an email sequence",
			[]types.Channel{types.ChannelEmail},
		},
		{
			"outreach campaign over linkedin and email",
			[]types.Channel{types.ChannelConnectionRequest, types.ChannelEmail},
		},
		{
			"campaign with sms and voicemail touches",
			[]types.Channel{types.ChannelSMS, types.ChannelVoicemail},
		},
		{
			"cold call sequence with a phone follow up",
			[]types.Channel{types.ChannelVoice},
		},
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.Channels, "text: %q", tt.text)
	}
}

func TestParseIntentCadence(t *testing.T) {
	tests := []struct {
		text string
		want types.Cadence
	}{
		{"an aggressive outreach push", types.CadenceAggressive},
		{"a quick email campaign", types.CadenceAggressive},
		{"a gentle nurture sequence", types.CadenceGentle},
		{"a slow and patient outreach campaign", types.CadenceGentle},
		{"an email campaign", types.CadenceModerate},
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.Cadence, "text: %q", tt.text)
	}
}

func TestParseIntentStepCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a 5 step email campaign", 5},
		{"a 7-touch outreach sequence", 7},
		{"a 1 step campaign", 2},   // clamped up
		{"a 40 step campaign", 10}, // clamped down
		{"an email campaign", 0},   // unspecified
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.StepCount, "text: %q", tt.text)
	}
}

func TestParseIntentTone(t *testing.T) {
	tests := []struct {
		text string
		want types.Tone
	}{
		{"a casual outreach campaign", types.ToneCasual},
		{"a friendly email sequence", types.ToneFriendly},
		{"a direct, to the point campaign", types.ToneDirect},
		{"an email campaign", types.ToneProfessional},
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.Tone, "text: %q", tt.text)
	}
}

func TestParseIntentAudience(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"an email campaign for marketing directors with a friendly tone", "marketing directors"},
		{"reach out to startup founders about our product", "startup founders"},
		{"a campaign targeting enterprise buyers", "enterprise buyers"},
		{"an email campaign", ""},
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.Audience, "text: %q", tt.text)
	}
}

func TestParseIntentGoal(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"an outreach campaign to recruit senior engineers", "Recruiting campaign"},
		{"send a sequence to investor contacts", "Fundraising outreach"},
		{"generate a partner outreach sequence", "Partnership outreach"},
		{"an email campaign promoting our webinar", "Event promotion campaign"},
		{"win back dormant accounts with an email sequence", "Re-engagement campaign"},
		{"send a launch announcement campaign", "Product launch announcement"},
		{"an email campaign", "Cold outreach campaign"},
	}

	for _, tt := range tests {
		brief := ParseIntent(tt.text)
		require.NotNil(t, brief, "text: %q", tt.text)
		assert.Equal(t, tt.want, brief.Goal, "text: %q", tt.text)
	}
}

func TestParseIntentDiscovery(t *testing.T) {
	brief := ParseIntent("find leads for director roles based in Austin and send an email campaign")
	require.NotNil(t, brief)
	require.NotNil(t, brief.Discovery)

	assert.Equal(t, 50, brief.Discovery.Limit)
	assert.Equal(t, "director", brief.Discovery.Title)
	assert.Equal(t, "Austin", brief.Discovery.Location)
}

func TestParseIntentDiscoveryNotFlagged(t *testing.T) {
	brief := ParseIntent("send an email campaign to ceos")
	require.NotNil(t, brief)
	assert.Nil(t, brief.Discovery)
}
