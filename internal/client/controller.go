package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jonathan/interview-forge/internal/config"
	"github.com/jonathan/interview-forge/internal/types"
)

// Controller drives the payment-gated job lifecycle: started exactly once
// per session token, then polled at a fixed cadence until a terminal state.
// Transitions are one-directional; there are no retries and no backoff.
type Controller struct {
	client   *Client
	state    *State
	notifier Notifier
	interval time.Duration

	mu      sync.Mutex
	started map[string]bool // session tokens a start call was issued for
}

// NewController creates a controller polling at the given interval. A zero
// interval uses the default 15-second cadence.
func NewController(client *Client, state *State, notifier Notifier, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return &Controller{
		client:   client,
		state:    state,
		notifier: notifier,
		interval: interval,
		started:  make(map[string]bool),
	}
}

// Run starts the job for the session token and polls it to a terminal
// state. A token that was already supplied — even after completion — issues
// no second start call. Run blocks until the job is terminal or ctx is
// cancelled; on cancellation outstanding timers are released and no further
// state mutation happens.
func (c *Controller) Run(ctx context.Context, sessionToken string) error {
	c.mu.Lock()
	if c.started[sessionToken] {
		c.mu.Unlock()
		return nil
	}
	c.started[sessionToken] = true
	c.mu.Unlock()

	c.state.SetInterviewing(true)

	jobID, err := c.client.StartJob(ctx, sessionToken)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.state.SetInterviewing(false)
		c.notifier.Error(err.Error())
		return err
	}
	log.Printf("[lifecycle] job %s started for session %s", jobID, sessionToken)

	return c.poll(ctx, jobID)
}

// poll issues a status request immediately and then on the fixed interval.
// Polls are sequential: the next wait begins only after the prior response
// has been handled.
func (c *Controller) poll(ctx context.Context, jobID string) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		job, err := c.client.JobStatus(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.state.SetInterviewing(false)
			c.notifier.Error(err.Error())
			return err
		}

		switch {
		case job.Status == types.JobStatusCompleted:
			c.state.SetInterviews(job.Result)
			c.state.SetInterviewing(false)
			c.notifier.Success(fmt.Sprintf("Generated %d interview question sets", len(job.Result)))
			return nil
		case job.Status == types.JobStatusFailed:
			c.state.SetInterviewing(false)
			c.notifier.Error(job.ErrorMessage)
			return fmt.Errorf("job %s failed: %s", jobID, job.ErrorMessage)
		default:
			log.Printf("[lifecycle] job %s pending (%d%%)", jobID, job.Progress)
			timer.Reset(c.interval)
		}
	}
}
