// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fulltext

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
)

// ErrConversionTimeout is returned by Pool.Run when the task outlives its
// deadline.
var ErrConversionTimeout = errors.New("conversion timed out")

// Pool runs conversions on a bounded set of workers. Waiting callers are
// released at their deadline even while the task keeps a worker busy.
type Pool struct {
	pool *ants.Pool
}

// NewPool returns a pool of size workers.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	p, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create conversion pool: %w", err)
	}
	return &Pool{pool: p}, nil
}

type taskResult struct {
	out string
	err error
}

// Run executes fn on a worker and waits at most timeout for its result. The
// context passed to fn is cancelled when Run returns. Queue time counts
// against the timeout.
func (p *Pool) Run(ctx context.Context, timeout time.Duration, fn func(context.Context) (string, error)) (string, error) {
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan taskResult, 1)
	task := func() {
		if err := taskCtx.Err(); err != nil {
			done <- taskResult{err: err}
			return
		}
		out, err := fn(taskCtx)
		done <- taskResult{out: out, err: err}
	}

	// Submit blocks while every worker is busy; keep that wait off the
	// caller so the deadline still applies.
	go func() {
		if err := p.pool.Submit(task); err != nil {
			done <- taskResult{err: fmt.Errorf("submit conversion: %w", err)}
		}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-taskCtx.Done():
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", ErrConversionTimeout
	}
}

// Running reports the number of busy workers.
func (p *Pool) Running() int { return p.pool.Running() }

// Release stops accepting tasks and frees idle workers.
func (p *Pool) Release() { p.pool.Release() }
