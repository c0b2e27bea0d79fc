package types

import (
	"errors"
	"fmt"
	"strings"
)

// Metadata is an unstructured property container for artifacts.
type Metadata map[string]any

func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}
	copy := make(Metadata, len(m))
	for k, v := range m {
		copy[k] = v
	}
	return copy
}

// Artifact references a materialized data or model unit produced by a
// pipeline component. Channels hold artifacts, they never create them.
type Artifact struct {
	Type       string
	ID         string
	URI        string
	Properties Metadata
}

func (a *Artifact) TypeName() string { return a.Type }

func (a *Artifact) Validate() error {
	if strings.TrimSpace(a.Type) == "" {
		return errors.New("artifact type is required")
	}
	if strings.TrimSpace(a.URI) == "" {
		return errors.New("artifact uri is required")
	}
	return nil
}

func (a *Artifact) String() string {
	return fmt.Sprintf("Artifact(type: %s, id: %s, uri: %s)", a.Type, a.ID, a.URI)
}
