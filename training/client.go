package training

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/animus-labs/conduit-go/internal/platform/env"
)

// JobState is the remote training service's job lifecycle state.
type JobState string

const (
	JobStateQueued    JobState = "QUEUED"
	JobStatePreparing JobState = "PREPARING"
	JobStateRunning   JobState = "RUNNING"
	JobStateSucceeded JobState = "SUCCEEDED"
	JobStateFailed    JobState = "FAILED"
	JobStateCancelled JobState = "CANCELLED"
)

func (s JobState) Terminal() bool {
	switch s {
	case JobStateSucceeded, JobStateFailed, JobStateCancelled:
		return true
	default:
		return false
	}
}

// Job is the remote service's view of a training job.
type Job struct {
	ID           string   `json:"jobId"`
	Spec         JobSpec  `json:"trainingInput"`
	State        JobState `json:"state,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
}

// JobService is the request/response surface of the remote training API.
type JobService interface {
	CreateJob(ctx context.Context, job Job) (Job, error)
	GetJob(ctx context.Context, jobID string) (Job, error)
}

var (
	ErrJobNotFound      = errors.New("training job not found")
	ErrJobAlreadyExists = errors.New("training job already exists")
	ErrUnauthorized     = errors.New("training request unauthorized")
)

type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("training api error (status=%d)", e.StatusCode)
	}
	return fmt.Sprintf("training api error (status=%d): %s", e.StatusCode, body)
}

type ClientConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

func ClientConfigFromEnv() (ClientConfig, error) {
	timeout, err := env.Duration("CONDUIT_TRAINING_TIMEOUT", 30*time.Second)
	if err != nil {
		return ClientConfig{}, err
	}
	cfg := ClientConfig{
		Endpoint: env.String("CONDUIT_TRAINING_ENDPOINT", ""),
		Token:    env.String("CONDUIT_TRAINING_TOKEN", ""),
		Timeout:  timeout,
	}
	if err := cfg.Validate(); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func (c ClientConfig) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("training endpoint is required")
	}
	if c.Timeout <= 0 {
		return errors.New("training timeout must be positive")
	}
	return nil
}

// Client is an HTTP implementation of JobService.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		token:   strings.TrimSpace(cfg.Token),
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) CreateJob(ctx context.Context, job Job) (Job, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return Job{}, fmt.Errorf("encode job: %w", err)
	}
	var created Job
	if err := c.do(ctx, http.MethodPost, "/v1/jobs", payload, &created); err != nil {
		return Job{}, err
	}
	return created, nil
}

func (c *Client) GetJob(ctx context.Context, jobID string) (Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return Job{}, errors.New("job id is required")
	}
	var job Job
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+jobID, nil, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("training request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return ErrJobNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrJobAlreadyExists
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
