package types

import "fmt"

// ConfigurationError reports an invalid channel or adapter configuration,
// such as a missing type descriptor or a missing required setting.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// TypeMismatchError reports an artifact whose type name disagrees with the
// declared type of the channel holding it.
type TypeMismatchError struct {
	ChannelType  string
	ArtifactType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("artifact type %q does not match channel type %q",
		e.ArtifactType, e.ChannelType)
}

// StateError reports a mutation that violates the build-then-freeze
// discipline, such as rebinding already-bound producer metadata.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// RemoteExecutionError reports a remote job that ended in a failed
// terminal state.
type RemoteExecutionError struct {
	JobID   string
	State   string
	Message string
}

func (e *RemoteExecutionError) Error() string {
	msg := fmt.Sprintf("remote job %q ended in state %q", e.JobID, e.State)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}
