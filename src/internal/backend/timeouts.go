package backend

import (
	"context"
	"time"
)

// Class groups operations that share a timeout.
type Class int

const (
	// Query covers fast local reads such as "node -v".
	Query Class = iota
	// Change covers use, uninstall and proxy updates.
	Change
	// Install covers "nvm install", which downloads and extracts.
	Install
	// Fetch covers HTTP requests to the release index.
	Fetch
)

// Timeouts holds the deadline applied to each operation class. Zero
// durations are replaced by WithDefaults; a negative duration disables the
// deadline for that class.
type Timeouts struct {
	Query   time.Duration
	Change  time.Duration
	Install time.Duration
	Fetch   time.Duration
}

// DefaultTimeouts returns the built-in policy.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Query:   15 * time.Second,
		Change:  2 * time.Minute,
		Install: 30 * time.Minute,
		Fetch:   30 * time.Second,
	}
}

// For returns the timeout configured for class.
func (t Timeouts) For(class Class) time.Duration {
	switch class {
	case Query:
		return t.Query
	case Change:
		return t.Change
	case Install:
		return t.Install
	case Fetch:
		return t.Fetch
	}
	return 0
}

// Context derives a child of ctx bounded by the class timeout.
func (t Timeouts) Context(ctx context.Context, class Class) (context.Context, context.CancelFunc) {
	if d := t.For(class); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// WithDefaults fills zero durations from DefaultTimeouts.
func (t Timeouts) WithDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Query == 0 {
		t.Query = d.Query
	}
	if t.Change == 0 {
		t.Change = d.Change
	}
	if t.Install == 0 {
		t.Install = d.Install
	}
	if t.Fetch == 0 {
		t.Fetch = d.Fetch
	}
	return t
}
