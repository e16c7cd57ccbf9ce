package captcha

import "context"

// MockVerifier is a test double for Verifier.
// It allows custom behavior injection via a function field.
type MockVerifier struct {
	// VerifyFunc is called by Verify if set.
	// If nil, every token verifies successfully.
	VerifyFunc func(ctx context.Context, token string) error

	callCount int
}

var _ Verifier = (*MockVerifier)(nil)

// NewMockVerifier creates a mock verifier that accepts every token.
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

// Verify records the call and delegates to VerifyFunc when set.
func (m *MockVerifier) Verify(ctx context.Context, token string) error {
	m.callCount++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, token)
	}
	return nil
}

// CallCount returns the number of times Verify was called.
func (m *MockVerifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockVerifier) Reset() {
	m.callCount = 0
	m.VerifyFunc = nil
}
