package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"voice2txt/internal/app/api"
)

// MockTranscriber is a testify mock of api.Transcriber. Calls are answered
// from expectations set with On("Transcript", ctx, request).
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	CallHistory []api.Request
}

// NewMockTranscriber creates a MockTranscriber with no expectations.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, req api.Request) (*api.Result, error) {
	m.mu.Lock()
	m.CallHistory = append(m.CallHistory, req)
	m.mu.Unlock()

	args := m.Called(ctx, req)
	var result *api.Result
	if r := args.Get(0); r != nil {
		result = r.(*api.Result)
	}
	return result, args.Error(1)
}

// CallCount returns how many times Transcript was called.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CallHistory)
}

// ReturnText makes every call succeed with text.
func (m *MockTranscriber) ReturnText(text string) *MockTranscriber {
	m.On("Transcript", mock.Anything, mock.Anything).Return(&api.Result{Text: text}, nil)
	return m
}

// ReturnError makes every call fail with err.
func (m *MockTranscriber) ReturnError(err error) *MockTranscriber {
	m.On("Transcript", mock.Anything, mock.Anything).Return(nil, err)
	return m
}
