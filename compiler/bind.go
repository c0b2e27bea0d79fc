package compiler

import (
	"errors"
	"fmt"

	"github.com/animus-labs/conduit-go/pipeline"
	"github.com/animus-labs/conduit-go/types"
)

// ErrProducerUnbound marks a channel read that requires producer metadata
// before it has been bound by a compile pass.
var ErrProducerUnbound = errors.New("channel producer is not bound")

// BindProducers attaches producer metadata to every declared output channel
// in the pipeline: the producing component's id and the output key. Binding
// is idempotent; a channel already bound to a different producer surfaces
// the underlying StateError.
func BindProducers(p *pipeline.Pipeline) error {
	for _, comp := range p.Components {
		for _, key := range comp.OutputKeys() {
			ch := comp.Outputs[key]
			info := types.ProducerInfo{ComponentID: comp.ID, Key: key}
			if err := ch.BindProducer(info); err != nil {
				return fmt.Errorf("bind producer %s.%s: %w", comp.ID, key, err)
			}
		}
	}
	return nil
}

// ArtifactQuery is the lookup key a downstream orchestrator issues against
// an execution-metadata store to resolve a channel's artifacts. Building
// the query is in scope here; issuing it is not.
type ArtifactQuery struct {
	ComponentID string
	OutputKey   string
	TypeName    string
}

// QueryFor assembles the metadata lookup query for a channel. The channel
// must have producer metadata bound.
func QueryFor(ch *types.Channel) (ArtifactQuery, error) {
	if ch == nil {
		return ArtifactQuery{}, errors.New("channel is required")
	}
	info, ok := ch.Producer()
	if !ok {
		return ArtifactQuery{}, fmt.Errorf("%w: type %s", ErrProducerUnbound, ch.TypeName())
	}
	return ArtifactQuery{
		ComponentID: info.ComponentID,
		OutputKey:   info.Key,
		TypeName:    ch.TypeName(),
	}, nil
}
