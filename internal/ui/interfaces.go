package ui

import "fmt"

// Reporter defines the interface for run progress output
type Reporter interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Prompter defines interface for user interaction
type Prompter interface {
	ConfirmRelease(summary string) (bool, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// ConfirmRelease prompts user to confirm the pending create/update
func (p *DefaultPrompter) ConfirmRelease(summary string) (bool, error) {
	return ConfirmRelease(summary)
}

// MockPrompter for testing
type MockPrompter struct {
	Confirmed         bool
	ConfirmationError error

	// Call tracking
	ConfirmReleaseCalled bool
	LastSummary          string
}

// ConfirmRelease mocks confirmation
func (m *MockPrompter) ConfirmRelease(summary string) (bool, error) {
	m.ConfirmReleaseCalled = true
	m.LastSummary = summary
	return m.Confirmed, m.ConfirmationError
}

// MockReporter captures output lines for testing
type MockReporter struct {
	InfoLines  []string
	WarnLines  []string
	ErrorLines []string
}

// Infof records an info line
func (m *MockReporter) Infof(format string, args ...interface{}) {
	m.InfoLines = append(m.InfoLines, fmt.Sprintf(format, args...))
}

// Warnf records a warning line
func (m *MockReporter) Warnf(format string, args ...interface{}) {
	m.WarnLines = append(m.WarnLines, fmt.Sprintf(format, args...))
}

// Errorf records an error line
func (m *MockReporter) Errorf(format string, args ...interface{}) {
	m.ErrorLines = append(m.ErrorLines, fmt.Sprintf(format, args...))
}
