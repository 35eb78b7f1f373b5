package campaign

import (
	"sort"

	"outflow/internal/types"
)

// channelPrecedence is the fixed ordering of channels within a synthesized
// sequence: discovery first, then the warm-up channels, then the heavier
// touches. Channels without a rank sort last, in their original order.
var channelPrecedence = map[types.Channel]int{
	types.ChannelDiscovery:         0,
	types.ChannelConnectionRequest: 1,
	types.ChannelMessage:           2,
	types.ChannelEmail:             3,
	types.ChannelSMS:               4,
	types.ChannelVoice:             5,
	types.ChannelVoicemail:         6,
}

// sequenceChannels orders channels by precedence. When discovery is
// requested, the discovery channel is prepended (and deduplicated if the
// list already carried it).
func sequenceChannels(channels []types.Channel, discovery bool) []types.Channel {
	ordered := make([]types.Channel, 0, len(channels)+1)
	if discovery {
		ordered = append(ordered, types.ChannelDiscovery)
	}
	for _, ch := range channels {
		if ch == types.ChannelDiscovery && discovery {
			continue // already prepended
		}
		ordered = append(ordered, ch)
	}

	// Stable sort keeps unranked channels in their original relative order.
	head := 0
	if discovery {
		head = 1 // discovery stays pinned in front
	}
	rest := ordered[head:]
	sort.SliceStable(rest, func(i, j int) bool {
		ri, iok := channelPrecedence[rest[i]]
		rj, jok := channelPrecedence[rest[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true // ranked before unranked
		default:
			return false
		}
	})
	return ordered
}

// allocateSteps assigns one channel per outreach step. Each outreach channel
// gets floor(target/len(channels)) steps with a minimum of 1, emitted
// channel-major in precedence order until the target is reached. Leftover
// capacity from uneven division is left unused, not redistributed.
func allocateSteps(outreach []types.Channel, target int) []types.Channel {
	if len(outreach) == 0 || target <= 0 {
		return nil
	}

	perChannel := target / len(outreach)
	if perChannel < 1 {
		perChannel = 1
	}

	assigned := make([]types.Channel, 0, target)
	for _, ch := range outreach {
		for i := 0; i < perChannel && len(assigned) < target; i++ {
			assigned = append(assigned, ch)
		}
	}
	return assigned
}
