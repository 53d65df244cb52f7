// Package jobs tracks generation jobs from session redemption to a terminal
// state. Jobs live in memory for the lifetime of the process; there is no
// durable store behind them.
package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-forge/internal/generate"
	"github.com/jonathan/interview-forge/internal/payments"
	"github.com/jonathan/interview-forge/internal/types"
)

// maxConcurrentGenerations bounds the LLM fan-out per job.
const maxConcurrentGenerations = 4

// ErrInvalidProfile indicates a redeemed session carried a profile the
// boundary rejects.
type ErrInvalidProfile struct {
	Reason string
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.Reason)
}

// Manager redeems checkout sessions into jobs and runs each job's
// generation in the background. Redeeming the same session again returns
// the job it already started.
type Manager struct {
	mu       sync.Mutex
	jobs     map[string]*types.Job
	sessions map[string]string // session token -> job id

	provider  payments.Provider
	generator generate.Generator

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewManager creates a manager with no jobs.
func NewManager(provider payments.Provider, generator generate.Generator) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		jobs:      make(map[string]*types.Job),
		sessions:  make(map[string]string),
		provider:  provider,
		generator: generator,
		baseCtx:   ctx,
		cancel:    cancel,
	}
}

// Start redeems a checkout session and begins generation. The session token
// is the idempotency key: a token that already produced a job returns that
// job's id without starting another.
func (m *Manager) Start(ctx context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	if jobID, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return jobID, nil
	}
	m.mu.Unlock()

	profile, err := m.provider.RedeemSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := profile.Validate(); err != nil {
		return "", &ErrInvalidProfile{Reason: err.Error()}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// A concurrent redeem of the same token may have won the race.
	if jobID, ok := m.sessions[sessionID]; ok {
		return jobID, nil
	}

	jobID := uuid.New().String()
	m.jobs[jobID] = &types.Job{ID: jobID, Status: types.JobStatusPending}
	m.sessions[sessionID] = jobID

	log.Printf("[jobs] starting job %s: %s", jobID, profile.String())
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.run(jobID, *profile)
	}()

	return jobID, nil
}

// Get returns a snapshot of the job.
func (m *Manager) Get(jobID string) (types.Job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return types.Job{}, false
	}
	snapshot := *job
	snapshot.Result = append([]types.Interview(nil), job.Result...)
	return snapshot, true
}

// run generates the job's interviews, updating progress as sets complete.
func (m *Manager) run(jobID string, profile types.Profile) {
	total := profile.DesiredCount
	results := make([]types.Interview, total)
	done := 0

	g, ctx := errgroup.WithContext(m.baseCtx)
	g.SetLimit(maxConcurrentGenerations)
	for i := 0; i < total; i++ {
		g.Go(func() error {
			interview, err := m.generator.GenerateInterview(ctx, profile)
			if err != nil {
				return err
			}
			results[i] = interview

			m.mu.Lock()
			done++
			if job, ok := m.jobs[jobID]; ok && job.Status == types.JobStatusPending {
				job.Progress = done * 100 / total
			}
			m.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[jobs] job %s failed: %v", jobID, err)
		m.fail(jobID, err.Error())
		return
	}

	log.Printf("[jobs] job %s completed with %d interviews", jobID, total)
	m.complete(jobID, results)
}

func (m *Manager) complete(jobID string, results []types.Interview) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[jobID]; ok {
		job.Status = types.JobStatusCompleted
		job.Progress = 100
		job.Result = results
	}
}

func (m *Manager) fail(jobID, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.jobs[jobID]; ok {
		job.Status = types.JobStatusFailed
		job.ErrorMessage = message
	}
}

// Close cancels in-flight generation and waits for workers to exit.
func (m *Manager) Close() {
	m.cancel()
	m.wg.Wait()
}
