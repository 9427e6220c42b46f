package reminder

import "time"

// Request carries one reminder-extraction command through the pipeline.
// Command is required; Context and Language are optional free text and a
// BCP-47-like tag. Now anchors relative references ("tomorrow", "next Friday").
type Request struct {
	Command  string
	Context  string
	Language string
	Now      time.Time
}

// Candidate is a single reminder extracted by the model. It is never
// constructed by this system directly, only decoded from model output.
type Candidate struct {
	Task      string      `json:"task"`
	Datetime  *string     `json:"datetime"`
	Recurring *Recurrence `json:"recurring"`
}

// Recurrence describes a repeating schedule attached to a reminder.
type Recurrence struct {
	Type       string   `json:"type"`
	Interval   *int     `json:"interval,omitempty"`
	Days       []string `json:"days,omitempty"`
	DayOfMonth *int     `json:"day_of_month,omitempty"`
	Month      *string  `json:"month,omitempty"`
}

// Envelope is the structured result of one extraction. Invariants:
// Incomplete implies Reminders is empty; a complete envelope carries a
// non-null datetime on every candidate. Message is always present, either
// a confirmation or a clarification question for the user.
type Envelope struct {
	Reminders  []Candidate `json:"reminders"`
	Incomplete bool        `json:"incomplete"`
	Message    string      `json:"message"`
}
