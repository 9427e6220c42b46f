package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSynthesizer is a mock implementation of the speech synthesis client
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	args := m.Called(ctx, text, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTokenIssuer is a mock implementation of the transcription token client
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) CreateTemporaryToken(ctx context.Context, expiresIn int) (string, error) {
	args := m.Called(ctx, expiresIn)
	return args.String(0), args.Error(1)
}
