// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across upstream clients.
package httputil

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultMinInterval is the spacing arXiv asks clients to keep between
// consecutive API requests.
const DefaultMinInterval = 3 * time.Second

// Clock abstracts time so the gate can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithClock replaces the wall clock.
func WithClock(c Clock) GateOption {
	return func(g *Gate) { g.clock = c }
}

// WithAdmitHook registers a callback invoked on every admission with the
// admission time and how long the caller waited for it. The hook runs while
// the gate is held and must not call back into the gate.
func WithAdmitHook(fn func(admitted time.Time, waited time.Duration)) GateOption {
	return func(g *Gate) { g.onAdmit = fn }
}

// Gate serializes outbound requests so that consecutive admissions are at
// least interval apart, regardless of how many goroutines call Acquire.
//
// A Gate is meant to be constructed once per upstream and shared by every
// component that talks to that upstream.
type Gate struct {
	interval time.Duration
	clock    Clock
	onAdmit  func(time.Time, time.Duration)

	// sem is a single-slot lock that, unlike sync.Mutex, can be abandoned
	// when the caller's context ends.
	sem  *semaphore.Weighted
	last time.Time // guarded by sem
}

// NewGate returns a gate admitting at most one caller per interval. A
// non-positive interval selects DefaultMinInterval.
func NewGate(interval time.Duration, opts ...GateOption) *Gate {
	if interval <= 0 {
		interval = DefaultMinInterval
	}
	g := &Gate{
		interval: interval,
		clock:    systemClock{},
		sem:      semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Interval returns the minimum spacing between admissions.
func (g *Gate) Interval() time.Duration { return g.interval }

// Acquire blocks until at least the gate interval has elapsed since the
// previous admission, then records the new admission and returns nil.
//
// If ctx ends first, Acquire returns ctx.Err() and the gate state is left
// exactly as it was: an abandoned waiter never counts as an admission.
func (g *Gate) Acquire(ctx context.Context) error {
	// The reported wait includes time queued behind other callers.
	start := g.clock.Now()
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	if !g.last.IsZero() {
		if wait := g.interval - g.clock.Now().Sub(g.last); wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-g.clock.After(wait):
			}
		}
	}

	admitted := g.clock.Now()
	g.last = admitted
	if g.onAdmit != nil {
		g.onAdmit(admitted, admitted.Sub(start))
	}
	return nil
}

// LastAdmission returns the time of the most recent admission, or the zero
// time if nothing has been admitted yet. It waits for any in-flight Acquire
// to finish.
func (g *Gate) LastAdmission() time.Time {
	_ = g.sem.Acquire(context.Background(), 1)
	defer g.sem.Release(1)
	return g.last
}
