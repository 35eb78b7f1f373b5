package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outflow/internal/types"
)

func TestMatchEmptyBriefReturnsNone(t *testing.T) {
	// Empty channels, empty goal, no step count: every template scores 0,
	// and the incumbent starts at 0, so nothing is ever selected. This is
	// the documented zero-score exclusion, not an error.
	brief := &types.Brief{}
	assert.Nil(t, Default().Match(brief))
}

func TestMatchNegativeScoreReturnsNone(t *testing.T) {
	// No channel overlap, no category keyword, and a step-count penalty
	// drives every score below zero.
	brief := &types.Brief{Goal: "something unrelated", StepCount: 10}
	assert.Nil(t, Default().Match(brief))
}

func TestMatchByChannelAndCategory(t *testing.T) {
	brief := &types.Brief{
		Goal: "Recruiting campaign",
		Channels: []types.Channel{
			types.ChannelConnectionRequest,
			types.ChannelMessage,
			types.ChannelEmail,
		},
	}

	tpl := Default().Match(brief)
	require.NotNil(t, tpl)
	assert.Equal(t, "/tpl_recruiting_pipeline", tpl.ID)
}

func TestMatchStepCountPenalty(t *testing.T) {
	// Both cold templates share channel overlap and the category bonus;
	// the 4-step brief penalizes the 5-step template by 2 points.
	brief := &types.Brief{
		Goal:      "Cold outreach campaign",
		Channels:  []types.Channel{types.ChannelEmail},
		StepCount: 4,
	}

	tpl := Default().Match(brief)
	require.NotNil(t, tpl)
	assert.Equal(t, "/tpl_cold_email_classic", tpl.ID)
}

func TestMatchFirstFoundWinsTies(t *testing.T) {
	// With no step count, both cold templates score identically
	// (10 channel + 15 category); strict-greater comparison keeps the
	// first one encountered in library order.
	brief := &types.Brief{
		Goal:     "Cold outreach campaign",
		Channels: []types.Channel{types.ChannelEmail},
	}

	tpl := Default().Match(brief)
	require.NotNil(t, tpl)
	assert.Equal(t, "/tpl_cold_email_classic", tpl.ID)
}

func TestScoreTemplate(t *testing.T) {
	tpl, err := Default().Get("/tpl_cold_email_classic") // 4 steps, [/email]
	require.NoError(t, err)

	tests := []struct {
		name  string
		brief *types.Brief
		want  int
	}{
		{
			"channel overlap only",
			&types.Brief{Goal: "anything", Channels: []types.Channel{types.ChannelEmail}},
			10,
		},
		{
			"channel and category",
			&types.Brief{Goal: "Cold outreach campaign", Channels: []types.Channel{types.ChannelEmail}},
			25,
		},
		{
			"step count penalty",
			&types.Brief{Goal: "Cold outreach campaign", Channels: []types.Channel{types.ChannelEmail}, StepCount: 7},
			19, // 10 + 15 - 2*|7-4|
		},
		{
			"no step count means no penalty",
			&types.Brief{Goal: "anything", Channels: []types.Channel{types.ChannelEmail}, StepCount: 0},
			10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreTemplate(tpl, tt.brief))
		})
	}
}
