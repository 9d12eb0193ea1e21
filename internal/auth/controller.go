package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/glassbrowser/glassd/internal/logger"
)

// FlowState is the lifecycle of the current sign-in attempt.
type FlowState string

const (
	StateIdle      FlowState = "idle"
	StatePending   FlowState = "pending"
	StateComplete  FlowState = "complete"
	StateCancelled FlowState = "cancelled"
	StateFailed    FlowState = "failed"
)

// Controller runs at most one sign-in flow at a time and exposes its
// outcome for polling. Beginning a new flow abandons the previous one.
type Controller struct {
	opts   Options
	logger logger.Logger

	mu     sync.Mutex
	flow   *Flow
	cancel context.CancelFunc
	state  FlowState
	token  string
	err    error
}

// NewController creates an idle controller.
func NewController(opts Options, log logger.Logger) *Controller {
	return &Controller{opts: opts, logger: log, state: StateIdle}
}

// Begin starts a fresh flow and returns the provider URL the user must
// visit. A pending flow is cancelled first.
func (c *Controller) Begin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.abandonLocked()

	flow, err := NewFlow(c.opts, c.logger)
	if err != nil {
		return "", err
	}
	if err := flow.Start(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.flow = flow
	c.cancel = cancel
	c.state = StatePending
	c.token = ""
	c.err = nil

	go func() {
		token, err := flow.Wait(ctx)

		c.mu.Lock()
		if c.flow == flow {
			switch {
			case err == nil:
				c.state = StateComplete
				c.token = token
			case errors.Is(err, ErrCancelled):
				c.state = StateCancelled
				c.err = err
			default:
				c.state = StateFailed
				c.err = err
			}
		}
		c.mu.Unlock()

		if err := flow.Close(); err != nil {
			c.logger.Warn("failed to close auth listener", logger.Error(err))
		}
	}()

	return flow.AuthURL(), nil
}

// Status returns the current flow state, the token once complete and the
// failure once failed or cancelled.
func (c *Controller) Status() (FlowState, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.token, c.err
}

// Cancel abandons the pending flow, if any.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePending {
		return
	}
	c.cancel()
}

// abandonLocked detaches the current flow. Caller holds c.mu.
// The listener is closed here so the next flow can rebind the port.
func (c *Controller) abandonLocked() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.flow != nil {
		if err := c.flow.Close(); err != nil {
			c.logger.Warn("failed to close auth listener", logger.Error(err))
		}
	}
	c.flow = nil
	c.cancel = nil
	c.state = StateIdle
	c.token = ""
	c.err = nil
}
