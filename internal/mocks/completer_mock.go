package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCompleter is a mock implementation of the completion capability
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
