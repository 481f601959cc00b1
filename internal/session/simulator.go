package session

import (
	"context"
	"time"
)

// Simulator stands in for the external identity provider. It accepts every
// credential and profile after a configurable delay, the way the demo portal
// mocks its backend. The delay honors context cancellation.
type Simulator struct {
	delay time.Duration
}

// NewSimulator creates a simulated credential checker with the given delay.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Authenticate accepts any credentials after the configured delay.
func (s *Simulator) Authenticate(ctx context.Context, _ Credentials) error {
	return s.wait(ctx)
}

// Register accepts any profile after the configured delay.
func (s *Simulator) Register(ctx context.Context, _ Profile) error {
	return s.wait(ctx)
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
