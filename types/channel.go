package types

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ProducerInfo identifies the component and output key that produced a
// channel's artifacts. Downstream consumers use it to assemble metadata
// lookup queries. Immutable once constructed.
type ProducerInfo struct {
	ComponentID string
	Key         string
}

func (p ProducerInfo) Validate() error {
	if strings.TrimSpace(p.ComponentID) == "" {
		return errors.New("producer component id is required")
	}
	if strings.TrimSpace(p.Key) == "" {
		return errors.New("producer output key is required")
	}
	return nil
}

func (p ProducerInfo) Equal(other ProducerInfo) bool { return p == other }

// Channel is a typed edge connecting a producing component output to
// downstream consumers. It restricts the artifact type that can be fed
// into or read from it. The artifact collection is fixed at construction;
// only producer metadata may be bound afterwards, exactly once.
type Channel struct {
	descriptor TypeDescriptor
	artifacts  []*Artifact

	mu       sync.Mutex
	producer *ProducerInfo
}

// Option configures a Channel during construction.
type Option func(*Channel)

// WithArtifacts sets the static artifact collection read from the channel.
// Order is preserved.
func WithArtifacts(artifacts ...*Artifact) Option {
	return func(c *Channel) {
		c.artifacts = append(c.artifacts, artifacts...)
	}
}

// WithProducer binds producer metadata at construction time.
func WithProducer(info ProducerInfo) Option {
	return func(c *Channel) {
		c.producer = &info
	}
}

// New constructs a channel for the given artifact type. Every supplied
// artifact must report the declared type name; validation happens here,
// never at read time.
func New(descriptor TypeDescriptor, opts ...Option) (*Channel, error) {
	if descriptor == nil {
		return nil, &ConfigurationError{Reason: "channel requires a type descriptor"}
	}
	name := descriptor.TypeName()
	if strings.TrimSpace(name) == "" {
		return nil, &ConfigurationError{Reason: "channel type descriptor reports an empty type name"}
	}

	c := &Channel{descriptor: descriptor}
	for _, opt := range opts {
		opt(c)
	}

	for i, artifact := range c.artifacts {
		if artifact == nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("channel artifact[%d] is nil", i)}
		}
		if artifact.TypeName() != name {
			return nil, &TypeMismatchError{ChannelType: name, ArtifactType: artifact.TypeName()}
		}
	}
	if c.producer != nil {
		if err := c.producer.Validate(); err != nil {
			return nil, &ConfigurationError{Reason: err.Error()}
		}
	}
	return c, nil
}

// Type returns the channel's type descriptor.
func (c *Channel) Type() TypeDescriptor { return c.descriptor }

// TypeName returns the declared artifact type name.
func (c *Channel) TypeName() string { return c.descriptor.TypeName() }

// Artifacts returns the artifacts readable from this channel, in insertion
// order. The returned slice is a copy; appending to or reordering it does
// not affect the channel.
func (c *Channel) Artifacts() []*Artifact {
	out := make([]*Artifact, len(c.artifacts))
	copy(out, c.artifacts)
	return out
}

// BindProducer attaches producer metadata to the channel. The binding is
// single-assignment: the first writer wins, rebinding an equal value is a
// no-op, and a conflicting rebind fails with a StateError.
func (c *Channel) BindProducer(info ProducerInfo) error {
	if err := info.Validate(); err != nil {
		return &ConfigurationError{Reason: err.Error()}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.producer != nil {
		if c.producer.Equal(info) {
			return nil
		}
		return &StateError{Reason: fmt.Sprintf(
			"channel producer already bound to %s.%s, refusing rebind to %s.%s",
			c.producer.ComponentID, c.producer.Key, info.ComponentID, info.Key)}
	}
	c.producer = &info
	return nil
}

// Producer returns the bound producer metadata, if any.
func (c *Channel) Producer() (ProducerInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.producer == nil {
		return ProducerInfo{}, false
	}
	return *c.producer, true
}

// String renders the channel for diagnostics only.
func (c *Channel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Channel(\n    type_name: %s\n    artifacts: [", c.TypeName())
	for i, artifact := range c.artifacts {
		if i > 0 {
			b.WriteString("\n    ")
		}
		b.WriteString(artifact.String())
	}
	b.WriteString("]\n)")
	return b.String()
}
