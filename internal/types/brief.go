package types

// SearchCriteria describes a prospect discovery search attached to a brief.
// The discovery step carries these verbatim; the external discovery provider
// interprets them.
type SearchCriteria struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Limit    int    `json:"limit" yaml:"limit"`
}

// Brief is the structured operator intent for a desired campaign. It is
// either parsed from free text by the perception package or assembled
// directly by a caller.
//
// Channels must be non-empty for synthesis. Cadence, StepCount, Tone, Offer,
// and Discovery are optional; zero values mean "unspecified" and synthesis
// applies its documented defaults.
type Brief struct {
	Goal      string          `json:"goal" yaml:"goal"`
	Audience  string          `json:"audience,omitempty" yaml:"audience,omitempty"`
	Channels  []Channel       `json:"channels" yaml:"channels"`
	Cadence   Cadence         `json:"cadence,omitempty" yaml:"cadence,omitempty"`
	StepCount int             `json:"step_count,omitempty" yaml:"step_count,omitempty"`
	Tone      Tone            `json:"tone,omitempty" yaml:"tone,omitempty"`
	Offer     string          `json:"offer,omitempty" yaml:"offer,omitempty"`
	Discovery *SearchCriteria `json:"discovery,omitempty" yaml:"discovery,omitempty"`
}

// WantsDiscovery reports whether the brief requests a prospect discovery step.
func (b *Brief) WantsDiscovery() bool {
	return b.Discovery != nil
}

// HasChannel reports whether ch is in the brief's channel set.
func (b *Brief) HasChannel(ch Channel) bool {
	for _, c := range b.Channels {
		if c == ch {
			return true
		}
	}
	return false
}
