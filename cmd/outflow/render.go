package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"outflow/internal/types"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	channelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	noteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

// marshalAs serializes v as yaml or json.
func marshalAs(v any, format string) ([]byte, error) {
	switch format {
	case "yaml", "":
		return yaml.Marshal(v)
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: yaml, json)", format)
	}
}

func channelList(channels []types.Channel) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = channelStyle.Render(string(ch))
	}
	return strings.Join(parts, " ")
}

// renderWorkflow formats a synthesized workflow for the terminal.
func renderWorkflow(wf *types.Workflow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", headingStyle.Render(wf.Name), labelStyle.Render(wf.ID))
	if wf.Description != "" {
		fmt.Fprintf(&b, "%s\n", wf.Description)
	}
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("channels:"), channelList(wf.Channels),
		labelStyle.Render("duration:"), wf.Metadata.Duration,
		labelStyle.Render("difficulty:"), string(wf.Metadata.Difficulty))
	if wf.Metadata.MatchedTemplateName != "" {
		fmt.Fprintf(&b, "%s\n", noteStyle.Render(
			fmt.Sprintf("styled after %q (%s)", wf.Metadata.MatchedTemplateName, wf.Metadata.MatchedTemplateID)))
	}
	b.WriteString("\n")

	for _, s := range wf.Steps {
		fmt.Fprintf(&b, "%s %s", stepStyle.Render(fmt.Sprintf("step %d", s.Order)), channelStyle.Render(string(s.Channel)))
		if s.Delay > 0 {
			fmt.Fprintf(&b, "  %s", labelStyle.Render(fmt.Sprintf("+%d %s", s.Delay, delayNoun(s.Delay, s.DelayUnit))))
		}
		b.WriteString("\n")
		if s.Subject != "" {
			fmt.Fprintf(&b, "  subject: %s\n", s.Subject)
		}
		for _, line := range strings.Split(strings.TrimRight(s.Body, "\n"), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		for _, c := range s.Conditions {
			rule := fmt.Sprintf("if %s -> %s", c.Trigger, c.Action)
			if c.Target != "" {
				rule += " " + string(c.Target)
			}
			fmt.Fprintf(&b, "  %s\n", noteStyle.Render(rule))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTemplate formats a library template summary.
func renderTemplate(tpl *types.Template) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", headingStyle.Render(tpl.Name), labelStyle.Render(tpl.ID))
	fmt.Fprintf(&b, "%s\n", tpl.Description)
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s   %s %d\n",
		labelStyle.Render("category:"), string(tpl.Category),
		labelStyle.Render("duration:"), tpl.Duration,
		labelStyle.Render("difficulty:"), string(tpl.Difficulty),
		labelStyle.Render("steps:"), len(tpl.Steps))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("channels:"), channelList(tpl.Channels))
	if tpl.Metrics.ReplyRate != "" {
		fmt.Fprintf(&b, "%s open %s, reply %s, conversion %s\n",
			labelStyle.Render("expected:"), orDash(tpl.Metrics.OpenRate), tpl.Metrics.ReplyRate, orDash(tpl.Metrics.Conversion))
	}
	if len(tpl.Tags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("tags:"), strings.Join(tpl.Tags, ", "))
	}
	if tpl.Note != "" {
		fmt.Fprintf(&b, "%s\n", noteStyle.Render(tpl.Note))
	}
	return strings.TrimRight(b.String(), "\n")
}

func delayNoun(n int, unit types.DelayUnit) string {
	noun := "days"
	if unit == types.DelayHours {
		noun = "hours"
	}
	if n == 1 {
		noun = strings.TrimSuffix(noun, "s")
	}
	return noun
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
