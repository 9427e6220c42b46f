package reminder

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Log is the append-only audit trail of accepted reminders: one JSON-encoded
// candidate per line, no identifiers, no rotation, no deletion path. It is
// not a source of truth; append failures are the caller's problem to log.
type Log struct {
	mu sync.Mutex
	f  *os.File
}

// NewLog opens (or creates) the audit log at path for appending.
func NewLog(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening reminders log: %w", err)
	}
	return &Log{f: f}, nil
}

// Append writes one candidate as a single JSON line. Each line is written in
// one Write call so concurrent appends never interleave.
func (l *Log) Append(c Candidate) error {
	line, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding reminder: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.Write(line); err != nil {
		return fmt.Errorf("appending reminder: %w", err)
	}
	return nil
}

func (l *Log) Close() error {
	return l.f.Close()
}
