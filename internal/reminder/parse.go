package reminder

import (
	"encoding/json"
	"fmt"
	"time"
)

// Datetime layouts the model is allowed to produce. The prompt asks for the
// zone-less form; some models append an offset anyway.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseEnvelope decodes sanitized model output into an Envelope and enforces
// the envelope invariants. Any violation is a parse error: the caller maps it
// to a generic 500 and logs the offending text server-side only.
func ParseEnvelope(clean string) (*Envelope, error) {
	var raw struct {
		Reminders  []Candidate `json:"reminders"`
		Incomplete *bool       `json:"incomplete"`
		Message    *string     `json:"message"`
	}
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON from model: %w", err)
	}
	if raw.Incomplete == nil || raw.Message == nil {
		return nil, fmt.Errorf("model output missing required fields (incomplete/message)")
	}

	env := &Envelope{
		Reminders:  raw.Reminders,
		Incomplete: *raw.Incomplete,
		Message:    *raw.Message,
	}

	if env.Incomplete {
		// Incomplete results never carry reminders.
		env.Reminders = []Candidate{}
		return env, nil
	}

	// A complete envelope must have a concrete, well-formed datetime on every
	// candidate. A null datetime here is a schema violation, not a reminder.
	for i, c := range env.Reminders {
		if c.Datetime == nil || *c.Datetime == "" {
			return nil, fmt.Errorf("candidate %d marked complete but has no datetime", i)
		}
		if !validDatetime(*c.Datetime) {
			return nil, fmt.Errorf("candidate %d has malformed datetime %q", i, *c.Datetime)
		}
	}

	return env, nil
}

func validDatetime(s string) bool {
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
