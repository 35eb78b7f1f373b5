package campaign

import (
	"fmt"
	"strings"

	"outflow/internal/types"
)

// Content synthesis produces canned, placeholder-bearing copy for each step.
// {{tokens}} such as {{first_name}} and {{company}} are recipient-specific
// and stay unresolved here; the personalization service fills them at send
// time. Only the brief's audience and offer are substituted directly, since
// they are campaign-level rather than per-recipient.

// stepContent is the synthesized copy for a single step.
type stepContent struct {
	Subject string // Email only; empty for every other channel
	Body    string
}

// toneProfile carries the greeting and sign-off phrases for a tone.
type toneProfile struct {
	Greeting string
	Closing  string
}

var toneProfiles = map[types.Tone]toneProfile{
	types.ToneProfessional: {Greeting: "Hi {{first_name}},", Closing: "Best regards,\n{{sender_name}}"},
	types.ToneCasual:       {Greeting: "Hey {{first_name}},", Closing: "Cheers,\n{{sender_name}}"},
	types.ToneFriendly:     {Greeting: "Hi {{first_name}},", Closing: "Warm regards,\n{{sender_name}}"},
	types.ToneDirect:       {Greeting: "{{first_name}} -", Closing: "{{sender_name}}"},
}

func profileFor(tone types.Tone) toneProfile {
	if p, ok := toneProfiles[tone]; ok {
		return p
	}
	return toneProfiles[types.ToneProfessional]
}

// audienceOr returns the brief's audience or a neutral fallback for copy
// that needs one.
func audienceOr(brief *types.Brief) string {
	if brief.Audience != "" {
		return brief.Audience
	}
	return "teams like yours"
}

// offerLine renders the brief's offer as a standalone sentence, or "".
func offerLine(brief *types.Brief) string {
	if brief.Offer == "" {
		return ""
	}
	return fmt.Sprintf("If it helps: %s.\n\n", strings.TrimSuffix(brief.Offer, "."))
}

// synthesizeContent builds the copy for one step. Email is the only channel
// with a subject line and the only one with distinct opening, follow-up, and
// closing variants; every other channel has a single variant.
func synthesizeContent(ch types.Channel, brief *types.Brief, firstContact, lastStep bool) stepContent {
	p := profileFor(brief.Tone)
	audience := audienceOr(brief)

	switch ch {
	case types.ChannelEmail:
		return emailContent(brief, p, audience, firstContact, lastStep)

	case types.ChannelConnectionRequest:
		return stepContent{Body: fmt.Sprintf(
			"Hi {{first_name}} - I work with %s and keep crossing paths with {{company}}. Would be glad to connect.",
			audience)}

	case types.ChannelMessage:
		body := fmt.Sprintf(
			"%s\n\nThanks for connecting. I help %s with exactly the kind of work {{company}} is doing. %sWorth a short conversation?",
			p.Greeting, audience, offerLine(brief))
		return stepContent{Body: body}

	case types.ChannelSMS:
		return stepContent{Body: fmt.Sprintf(
			"Hi {{first_name}}, {{sender_name}} here. I sent you a note about %s - worth a look when you have a minute?",
			brief.Goal)}

	case types.ChannelVoice:
		return stepContent{Body: fmt.Sprintf(
			"Call {{first_name}}. Reference the earlier touches, explain how we help %s, and offer a 15-minute call. %s",
			audience, strings.TrimSpace(offerLine(brief)))}

	case types.ChannelVoicemail:
		return stepContent{Body: fmt.Sprintf(
			"Hi {{first_name}}, this is {{sender_name}}. I've been reaching out about %s. No need to call back - just reply to my email when convenient.",
			brief.Goal)}

	case types.ChannelDiscovery:
		return stepContent{Body: discoveryBody(brief)}

	default:
		return stepContent{Body: fmt.Sprintf("%s\n\n%s", p.Greeting, p.Closing)}
	}
}

func emailContent(brief *types.Brief, p toneProfile, audience string, firstContact, lastStep bool) stepContent {
	switch {
	case firstContact:
		return stepContent{
			Subject: "Quick question, {{first_name}}",
			Body: fmt.Sprintf(
				"%s\n\nI'm reaching out because we work with %s on goals like \"%s\". %sWould a 15-minute call be worth your time?\n\n%s",
				p.Greeting, audience, brief.Goal, offerLine(brief), p.Closing),
		}
	case lastStep:
		return stepContent{
			Subject: "Closing the loop",
			Body: fmt.Sprintf(
				"%s\n\nI'll stop here so I'm not cluttering your inbox. If this becomes timely, this thread is the fastest way to reach me.\n\n%s",
				p.Greeting, p.Closing),
		}
	default:
		return stepContent{
			Subject: "Re: Quick question, {{first_name}}",
			Body: fmt.Sprintf(
				"%s\n\nFloating this back up in case it got buried. %sStill happy to share how we help %s.\n\n%s",
				p.Greeting, offerLine(brief), audience, p.Closing),
		}
	}
}

// discoveryBody describes the prospect search the discovery step performs.
// The criteria also travel verbatim in the step's config payload.
func discoveryBody(brief *types.Brief) string {
	c := brief.Discovery
	if c == nil {
		return "Search for prospects matching the campaign criteria."
	}

	var b strings.Builder
	b.WriteString("Search for up to ")
	fmt.Fprintf(&b, "%d prospects", c.Limit)
	if c.Title != "" {
		fmt.Fprintf(&b, " with the title %q", c.Title)
	}
	if c.Location != "" {
		fmt.Fprintf(&b, " based in %s", c.Location)
	}
	b.WriteString(".")
	return b.String()
}
