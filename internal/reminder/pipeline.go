package reminder

import (
	"context"
	"fmt"
)

// Completer is the capability consumed from the completion provider.
// Tests substitute a canned double so the routing logic below runs offline.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sink receives accepted reminders, one at a time, best effort.
type Sink interface {
	Append(c Candidate) error
}

// Pipeline runs one extraction end to end:
// build prompt -> complete -> sanitize -> parse -> route.
type Pipeline struct {
	completer Completer
	sink      Sink
}

func NewPipeline(completer Completer, sink Sink) *Pipeline {
	return &Pipeline{
		completer: completer,
		sink:      sink,
	}
}

// Process extracts reminders for one request. An incomplete envelope is
// returned as-is with nothing persisted. A complete envelope is returned
// immediately while its candidates are appended to the sink in the
// background: the audit log is fire-and-forget, so append failures are
// logged and never affect the response.
func (p *Pipeline) Process(ctx context.Context, req Request) (*Envelope, error) {
	prompt := BuildPrompt(req)

	raw, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion provider: %w", err)
	}

	env, err := ParseEnvelope(Sanitize(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing model output: %w (raw: %s)", err, raw)
	}

	if env.Incomplete {
		return env, nil
	}

	go p.persist(env.Reminders)

	return env, nil
}

func (p *Pipeline) persist(candidates []Candidate) {
	for _, c := range candidates {
		if err := p.sink.Append(c); err != nil {
			fmt.Printf("Error saving reminder %q: %v\n", c.Task, err)
		}
	}
}
