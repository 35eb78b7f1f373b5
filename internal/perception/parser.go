// Package perception turns free-form operator text into a structured campaign
// brief. It is a deterministic keyword heuristic, not a language model: the
// keyword tables below ARE the contract, and callers that need different
// phrasing support should extend the tables rather than the control flow.
//
// ParseIntent returns nil when the text does not look like a campaign request
// at all. That is "do not synthesize", not a failure.
package perception

import (
	"regexp"
	"strconv"
	"strings"

	"outflow/internal/logging"
	"outflow/internal/types"
)

// Step counts outside this range are clamped, not rejected; the operator said
// "a 40 step campaign" and meant "a long one".
const (
	minStepCount = 2
	maxStepCount = 10
)

// discoveryResultCap is the fixed result limit attached to discovery criteria.
const discoveryResultCap = 50

// intentKeywords gate detection: at least one must appear for the text to be
// treated as a campaign request.
var intentKeywords = []string{
	"campaign",
	"outreach",
	"sequence",
	"reach out",
	"send",
	"generate",
	"follow up",
	"drip",
}

// channelKeywords are checked independently; any hit adds the channel.
var channelKeywords = map[types.Channel][]string{
	types.ChannelEmail:             {"email", "e-mail", "inbox"},
	types.ChannelConnectionRequest: {"connection request", "connect with", "linkedin"},
	types.ChannelMessage:           {"linkedin message", "direct message", "inmail", " dm "},
	types.ChannelSMS:               {"sms", "text message", "texting"},
	types.ChannelVoice:             {"phone", "call them", "cold call", "voice call"},
	types.ChannelVoicemail:         {"voicemail"},
}

// discoveryKeywords flag a prospect discovery request.
var discoveryKeywords = []string{
	"find leads",
	"search linkedin",
	"discover",
	"scrape",
	"find prospects",
	"generate leads",
}

// roleKeywords is the fixed set of titles recognized for discovery criteria,
// checked in order; the first hit wins.
var roleKeywords = []string{
	"founder",
	"ceo",
	"cto",
	"vp of sales",
	"vp of marketing",
	"director",
	"head of",
	"manager",
	"engineer",
	"recruiter",
}

// locationPattern captures a location phrase after "based in", "in", or
// "from", up to punctuation or a connective.
var locationPattern = regexp.MustCompile(`(?i)\b(?:based in|in|from)\s+([a-z][a-z .-]*?)(?:\s+(?:with|using|and|via|over)\b|[,.;!?]|$)`)

// stepCountPattern captures a leading integer before a count noun
// ("5 step campaign", "7-touch sequence").
var stepCountPattern = regexp.MustCompile(`(\d+)[\s-]*(?:step|steps|touch|touches|stage|stages|part)`)

// audienceStopWords end the captured audience phrase.
var audienceStopWords = map[string]bool{
	"with": true, "using": true, "via": true, "over": true, "through": true,
	"across": true, "by": true, "in": true, "from": true, "and": true,
	"then": true, "that": true, "who": true, "about": true,
}

// ParseIntent parses free-form operator text into a Brief, or returns nil
// when the text carries no campaign intent. Pure and deterministic: the same
// text always yields the same brief.
func ParseIntent(text string) *types.Brief {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	if !containsAny(lower, intentKeywords) {
		logging.PerceptionDebug("No campaign intent in %q", truncate(trimmed, 80))
		return nil
	}

	brief := &types.Brief{
		Goal:      inferGoal(lower),
		Audience:  inferAudience(lower),
		Channels:  inferChannels(lower),
		Cadence:   inferCadence(lower),
		StepCount: inferStepCount(lower),
		Tone:      inferTone(lower),
	}

	if containsAny(lower, discoveryKeywords) {
		brief.Discovery = &types.SearchCriteria{
			Title:    inferRole(lower),
			Location: inferLocation(trimmed),
			Limit:    discoveryResultCap,
		}
	}

	logging.PerceptionDebug("Parsed brief: goal=%q channels=%v steps=%d cadence=%s",
		brief.Goal, brief.Channels, brief.StepCount, brief.Cadence)
	return brief
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// inferChannels runs the independent per-channel keyword checks and defaults
// to email when nothing matches.
func inferChannels(text string) []types.Channel {
	var channels []types.Channel
	// Fixed iteration order so output is deterministic.
	ordered := []types.Channel{
		types.ChannelConnectionRequest,
		types.ChannelMessage,
		types.ChannelEmail,
		types.ChannelSMS,
		types.ChannelVoice,
		types.ChannelVoicemail,
	}
	for _, ch := range ordered {
		if containsAny(text, channelKeywords[ch]) {
			channels = append(channels, ch)
		}
	}
	if len(channels) == 0 {
		channels = []types.Channel{types.ChannelEmail}
	}
	return channels
}

func inferCadence(text string) types.Cadence {
	switch {
	case containsAny(text, []string{"aggressive", "fast", "quick", "rapid", "urgent"}):
		return types.CadenceAggressive
	case containsAny(text, []string{"gentle", "slow", "relaxed", "patient", "light touch"}):
		return types.CadenceGentle
	default:
		return types.CadenceModerate
	}
}

func inferTone(text string) types.Tone {
	switch {
	case containsAny(text, []string{"casual", "informal", "conversational"}):
		return types.ToneCasual
	case containsAny(text, []string{"friendly", "warm", "personable"}):
		return types.ToneFriendly
	case containsAny(text, []string{"direct", "blunt", "to the point"}):
		return types.ToneDirect
	default:
		return types.ToneProfessional
	}
}

// inferStepCount extracts a requested step count ("5 step campaign"), clamped
// to [minStepCount, maxStepCount]. Zero means unspecified.
func inferStepCount(text string) int {
	m := stepCountPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if n < minStepCount {
		return minStepCount
	}
	if n > maxStepCount {
		return maxStepCount
	}
	return n
}

// inferAudience captures the noun phrase after "for", "to", "targeting", or
// "reach", up to a stop word. Empty when no marker is present.
func inferAudience(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		marker := w == "for" || w == "targeting" || w == "to" || w == "reach"
		if !marker {
			continue
		}
		// "reach out to X" - skip the "out to" connective.
		j := i + 1
		if w == "reach" && j < len(words) && words[j] == "out" {
			j++
			if j < len(words) && words[j] == "to" {
				j++
			}
		}
		var phrase []string
		for ; j < len(words); j++ {
			word := strings.Trim(words[j], ",.;:!?")
			if audienceStopWords[word] || word == "" {
				break
			}
			phrase = append(phrase, word)
			if strings.ContainsAny(words[j], ",.;:!?") {
				j++
				break
			}
		}
		if len(phrase) > 0 {
			return strings.Join(phrase, " ")
		}
	}
	return ""
}

// inferGoal maps goal keywords to a canned goal phrase. The phrases are
// deliberately aligned with the catalog's category keywords so a parsed
// brief scores the category bonus in template matching.
func inferGoal(text string) string {
	switch {
	case containsAny(text, []string{"recruit", "hire", "hiring", "candidate"}):
		return "Recruiting campaign"
	case containsAny(text, []string{"fundrais", "investor", "raise a round", "seed round"}):
		return "Fundraising outreach"
	case containsAny(text, []string{"partner", "integration", "co-marketing"}):
		return "Partnership outreach"
	case containsAny(text, []string{"event", "webinar", "conference", "meetup"}):
		return "Event promotion campaign"
	case containsAny(text, []string{"re-engage", "win back", "dormant", "churned"}):
		return "Re-engagement campaign"
	case containsAny(text, []string{"launch", "announce"}):
		return "Product launch announcement"
	case containsAny(text, []string{"network", "introduction", "meet people"}):
		return "Networking campaign"
	default:
		return "Cold outreach campaign"
	}
}

func inferRole(text string) string {
	for _, role := range roleKeywords {
		if strings.Contains(text, role) {
			return role
		}
	}
	return ""
}

func inferLocation(text string) string {
	m := locationPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
