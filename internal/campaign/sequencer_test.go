package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outflow/internal/types"
)

func TestSequenceChannelsPrecedence(t *testing.T) {
	got := sequenceChannels([]types.Channel{
		types.ChannelVoice,
		types.ChannelEmail,
		types.ChannelConnectionRequest,
		types.ChannelSMS,
	}, false)

	want := []types.Channel{
		types.ChannelConnectionRequest,
		types.ChannelEmail,
		types.ChannelSMS,
		types.ChannelVoice,
	}
	assert.Equal(t, want, got)
}

func TestSequenceChannelsDiscoveryPrepended(t *testing.T) {
	// Discovery already in the list: prepended once, deduplicated.
	got := sequenceChannels([]types.Channel{
		types.ChannelEmail,
		types.ChannelConnectionRequest,
		types.ChannelDiscovery,
	}, true)

	want := []types.Channel{
		types.ChannelDiscovery,
		types.ChannelConnectionRequest,
		types.ChannelEmail,
	}
	assert.Equal(t, want, got)
}

func TestSequenceChannelsUnrankedLast(t *testing.T) {
	got := sequenceChannels([]types.Channel{
		types.Channel("/carrier_pigeon"),
		types.ChannelEmail,
		types.Channel("/fax"),
	}, false)

	// Unranked channels sort last, keeping their original relative order.
	want := []types.Channel{
		types.ChannelEmail,
		types.Channel("/carrier_pigeon"),
		types.Channel("/fax"),
	}
	assert.Equal(t, want, got)
}

func TestAllocateStepsEvenSplit(t *testing.T) {
	got := allocateSteps([]types.Channel{types.ChannelConnectionRequest, types.ChannelEmail}, 4)
	want := []types.Channel{
		types.ChannelConnectionRequest,
		types.ChannelConnectionRequest,
		types.ChannelEmail,
		types.ChannelEmail,
	}
	assert.Equal(t, want, got)
}

func TestAllocateStepsLeftoverUnused(t *testing.T) {
	// 5 steps across 2 channels: floor(5/2)=2 each, the 5th slot stays empty.
	got := allocateSteps([]types.Channel{types.ChannelConnectionRequest, types.ChannelEmail}, 5)
	assert.Len(t, got, 4)
}

func TestAllocateStepsMoreChannelsThanTarget(t *testing.T) {
	// Minimum 1 per channel, emitted in order until the target is hit.
	got := allocateSteps([]types.Channel{
		types.ChannelConnectionRequest,
		types.ChannelEmail,
		types.ChannelSMS,
	}, 2)
	want := []types.Channel{types.ChannelConnectionRequest, types.ChannelEmail}
	assert.Equal(t, want, got)
}

func TestAllocateStepsSingleChannel(t *testing.T) {
	got := allocateSteps([]types.Channel{types.ChannelEmail}, 5)
	assert.Len(t, got, 5)
	for _, ch := range got {
		assert.Equal(t, types.ChannelEmail, ch)
	}
}

func TestAllocateStepsEmpty(t *testing.T) {
	assert.Nil(t, allocateSteps(nil, 5))
	assert.Nil(t, allocateSteps([]types.Channel{types.ChannelEmail}, 0))
}
