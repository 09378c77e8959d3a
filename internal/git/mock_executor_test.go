package git

import (
	"context"
	"strings"
)

// MockCommandExecutor records calls instead of running anything.
type MockCommandExecutor struct {
	Output              string
	Calls               [][]string
	ExecuteWithOutputFn func(ctx context.Context, name string, args ...string) (string, error)
}

// ExecuteWithOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))

	if m.ExecuteWithOutputFn != nil {
		return m.ExecuteWithOutputFn(ctx, name, args...)
	}

	return m.Output, nil
}

func (m *MockCommandExecutor) lastCall() string {
	if len(m.Calls) == 0 {
		return ""
	}
	return strings.Join(m.Calls[len(m.Calls)-1], " ")
}
