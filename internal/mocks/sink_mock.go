package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dlevitan/companion/internal/reminder"
)

// MockSink is a mock implementation of the reminder persistence sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Append(c reminder.Candidate) error {
	args := m.Called(c)
	return args.Error(0)
}
