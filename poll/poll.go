// Package poll runs long-running node operations that are started with one call
// and whose result is retrieved later by polling another call.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxpoletaev/meshconsole/mesh"
)

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultDeadline = 5 * time.Second
)

var (
	// ErrStartFailed is returned when the call starting the operation fails.
	ErrStartFailed = errors.New("failed to start operation")

	// ErrPollFailed is returned when a call retrieving the result fails.
	ErrPollFailed = errors.New("failed to poll operation result")

	// ErrTimeout is returned when no result is ready before the deadline.
	ErrTimeout = mesh.ErrTimeout
)

// State is the state of a running operation.
type State uint8

const (
	StateStarting State = iota + 1
	StatePolling
	StateSucceeded
	StateTimedOut
	StateFailed
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StatePolling:
		return "polling"
	case StateSucceeded:
		return "succeeded"
	case StateTimedOut:
		return "timed_out"
	case StateFailed:
		return "failed"
	case StateCanceled:
		return "canceled"
	default:
		return ""
	}
}

// IsTerminal returns true if no transitions are possible from the state.
func (s State) IsTerminal() bool {
	return s >= StateSucceeded
}

// Op describes a fire-and-poll operation.
type Op[T any] struct {
	// Start begins the operation. Optional.
	Start func(ctx context.Context) error

	// Poll retrieves the current result of the operation.
	Poll func(ctx context.Context) (T, error)

	// Ready tells whether a polled result completes the operation. When nil,
	// every successful poll completes it.
	Ready func(T) bool

	// Interval between polls. The first poll happens one interval after the
	// operation has started.
	Interval time.Duration

	// Deadline for a ready result, counted from the start of polling.
	Deadline time.Duration

	// OnState is called on every state transition. Exactly one terminal state
	// is reported per run.
	OnState func(State)
}

// Run starts the operation and polls for its result until a ready result is
// returned, the deadline expires, or ctx is done. Polls never overlap: a slow
// poll delays the next one. All timers are released before Run returns.
func Run[T any](ctx context.Context, op Op[T]) (T, error) {
	var zero T

	if op.Poll == nil {
		return zero, fmt.Errorf("poll function is required")
	}

	interval := op.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	deadline := op.Deadline
	if deadline <= 0 {
		deadline = DefaultDeadline
	}

	ready := op.Ready
	if ready == nil {
		ready = func(T) bool { return true }
	}

	report := func(s State) {
		if op.OnState != nil {
			op.OnState(s)
		}
	}

	// Called when polling is interrupted by ctx or by the deadline.
	interrupted := func() error {
		if err := ctx.Err(); err != nil {
			report(StateCanceled)
			return err
		}

		report(StateTimedOut)

		return ErrTimeout
	}

	report(StateStarting)

	if op.Start != nil {
		if err := op.Start(ctx); err != nil {
			if ctx.Err() != nil {
				report(StateCanceled)
				return zero, ctx.Err()
			}

			report(StateFailed)

			return zero, fmt.Errorf("%w: %w", ErrStartFailed, err)
		}
	}

	report(StatePolling)

	pollCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-pollCtx.Done():
			return zero, interrupted()
		case <-ticker.C:
		}

		result, err := op.Poll(pollCtx)
		if err != nil {
			if pollCtx.Err() != nil {
				return zero, interrupted()
			}

			report(StateFailed)

			return zero, fmt.Errorf("%w: %w", ErrPollFailed, err)
		}

		if ready(result) {
			report(StateSucceeded)
			return result, nil
		}
	}
}
