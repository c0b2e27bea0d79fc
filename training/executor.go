package training

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/animus-labs/conduit-go/types"
)

// Executor submits a training job to a remote service and waits for it to
// reach a terminal state. Input and output artifact dicts are passed
// through opaquely; the executor never inspects channel internals.
type Executor struct {
	jobs         JobService
	log          *slog.Logger
	pollInterval time.Duration
}

type ExecutorOption func(*Executor)

func WithPollInterval(interval time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.pollInterval = interval
	}
}

func WithLogger(log *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.log = log
	}
}

func NewExecutor(jobs JobService, opts ...ExecutorOption) (*Executor, error) {
	if jobs == nil {
		return nil, errors.New("job service is required")
	}
	e := &Executor{
		jobs:         jobs,
		log:          slog.Default(),
		pollInterval: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	return e, nil
}

// Run validates the adapter configuration, submits the job, and polls
// until completion. Configuration problems fail before any remote call.
// A job ending in a failed terminal state returns a RemoteExecutionError.
func (e *Executor) Run(ctx context.Context, inputs, outputs map[string][]*types.Artifact, cfg Config) (Job, error) {
	if err := cfg.Validate(); err != nil {
		return Job{}, err
	}

	jobID := strings.TrimSpace(cfg.JobID)
	if jobID == "" {
		jobID = "conduit_" + strings.ReplaceAll(uuid.NewString(), "-", "_")
	}

	spec := *cfg.TrainingArgs
	spec.Labels = mergeLabels(runtimeLabels(), spec.Labels)

	e.log.Info("submitting training job",
		"job_id", jobID,
		"project", spec.Project,
		"region", spec.Region,
		"inputs", artifactCount(inputs),
		"outputs", artifactCount(outputs))

	created, err := e.jobs.CreateJob(ctx, Job{ID: jobID, Spec: spec})
	if err != nil {
		return Job{}, fmt.Errorf("create training job: %w", err)
	}
	if strings.TrimSpace(created.ID) == "" {
		created.ID = jobID
	}

	return e.waitForCompletion(ctx, created.ID)
}

func (e *Executor) waitForCompletion(ctx context.Context, jobID string) (Job, error) {
	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		job, err := e.jobs.GetJob(ctx, jobID)
		if err != nil {
			return Job{}, fmt.Errorf("poll training job %q: %w", jobID, err)
		}
		if job.State.Terminal() {
			if job.State != JobStateSucceeded {
				return job, &types.RemoteExecutionError{
					JobID:   jobID,
					State:   string(job.State),
					Message: job.ErrorMessage,
				}
			}
			e.log.Info("training job succeeded", "job_id", jobID)
			return job, nil
		}
		e.log.Debug("training job still running", "job_id", jobID, "state", string(job.State))

		select {
		case <-ctx.Done():
			return Job{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func artifactCount(dict map[string][]*types.Artifact) int {
	total := 0
	for _, artifacts := range dict {
		total += len(artifacts)
	}
	return total
}
