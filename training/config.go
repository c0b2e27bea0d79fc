package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/animus-labs/conduit-go/types"
)

// Wire keys accepted in authored execution properties.
const (
	TrainingArgsKey = "ai_platform_training_args"
	JobIDKey        = "ai_platform_training_job_id"
)

// JobSpec describes a remote training job submission.
type JobSpec struct {
	Project  string            `json:"project"`
	Region   string            `json:"region"`
	ImageURI string            `json:"imageUri"`
	JobDir   string            `json:"jobDir,omitempty"`
	Args     []string          `json:"args,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
}

func (s JobSpec) Validate() error {
	if strings.TrimSpace(s.Project) == "" {
		return errors.New("training project is required")
	}
	if strings.TrimSpace(s.Region) == "" {
		return errors.New("training region is required")
	}
	if strings.TrimSpace(s.ImageURI) == "" {
		return errors.New("training image uri is required")
	}
	return nil
}

// Config enumerates the adapter's recognized options explicitly, replacing
// the loosely-typed configuration mapping probed by string key.
type Config struct {
	TrainingArgs *JobSpec
	JobID        string
}

func (c Config) Validate() error {
	if c.TrainingArgs == nil {
		return &types.ConfigurationError{
			Reason: fmt.Sprintf("%q not found in execution properties", TrainingArgsKey),
		}
	}
	if err := c.TrainingArgs.Validate(); err != nil {
		return &types.ConfigurationError{Reason: err.Error()}
	}
	return nil
}

// ConfigFromProperties extracts the adapter configuration from authored
// execution properties. The training args key is required; the job id key
// is optional.
func ConfigFromProperties(props types.Metadata) (Config, error) {
	raw, ok := props[TrainingArgsKey]
	if !ok || raw == nil {
		return Config{}, &types.ConfigurationError{
			Reason: fmt.Sprintf("%q not found in execution properties", TrainingArgsKey),
		}
	}
	spec, err := decodeJobSpec(raw)
	if err != nil {
		return Config{}, &types.ConfigurationError{
			Reason: fmt.Sprintf("decode %q: %v", TrainingArgsKey, err),
		}
	}

	cfg := Config{TrainingArgs: &spec}
	if rawID, ok := props[JobIDKey]; ok && rawID != nil {
		id, ok := rawID.(string)
		if !ok {
			return Config{}, &types.ConfigurationError{
				Reason: fmt.Sprintf("%q must be a string", JobIDKey),
			}
		}
		cfg.JobID = id
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeJobSpec(raw any) (JobSpec, error) {
	switch v := raw.(type) {
	case JobSpec:
		return v, nil
	case *JobSpec:
		if v == nil {
			return JobSpec{}, errors.New("job spec is nil")
		}
		return *v, nil
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return JobSpec{}, err
		}
		var spec JobSpec
		if err := json.Unmarshal(encoded, &spec); err != nil {
			return JobSpec{}, err
		}
		return spec, nil
	default:
		return JobSpec{}, fmt.Errorf("unsupported training args type %T", raw)
	}
}
