package pipeline

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/animus-labs/conduit-go/types"
)

// Manifest is the YAML surface for authoring a pipeline. Outputs declare an
// artifact type; inputs either reference an upstream output by component id
// and key, or carry a static artifact list.
type Manifest struct {
	Name       string              `yaml:"name"`
	Components []ComponentManifest `yaml:"components"`
}

type ComponentManifest struct {
	ID      string                    `yaml:"id"`
	Type    string                    `yaml:"type"`
	Inputs  map[string]InputManifest  `yaml:"inputs,omitempty"`
	Outputs map[string]OutputManifest `yaml:"outputs,omitempty"`
	Exec    map[string]any            `yaml:"exec_properties,omitempty"`
}

type InputManifest struct {
	From      string             `yaml:"from,omitempty"`
	Key       string             `yaml:"key,omitempty"`
	Type      string             `yaml:"type,omitempty"`
	Artifacts []ArtifactManifest `yaml:"artifacts,omitempty"`
}

type OutputManifest struct {
	Type string `yaml:"type"`
}

type ArtifactManifest struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id,omitempty"`
	URI  string `yaml:"uri"`
}

// ParseManifest decodes and structurally checks a pipeline manifest.
func ParseManifest(input []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(input, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if strings.TrimSpace(m.Name) == "" {
		return Manifest{}, fmt.Errorf("manifest name is required")
	}
	if len(m.Components) == 0 {
		return Manifest{}, fmt.Errorf("manifest must declare at least one component")
	}
	return m, nil
}

// Build wires the manifest into a Pipeline: output channels are created
// first, then inputs are resolved against them or against their static
// artifact lists. The result is validated before it is returned.
func (m Manifest) Build() (Pipeline, error) {
	outputs := make(map[string]map[string]*types.Channel, len(m.Components))
	components := make([]Component, 0, len(m.Components))

	for _, cm := range m.Components {
		id := strings.TrimSpace(cm.ID)
		if id == "" {
			return Pipeline{}, fmt.Errorf("manifest component id is required")
		}
		comp := Component{
			ID:             id,
			Type:           strings.TrimSpace(cm.Type),
			Inputs:         make(map[string]*types.Channel, len(cm.Inputs)),
			Outputs:        make(map[string]*types.Channel, len(cm.Outputs)),
			ExecProperties: types.Metadata(cm.Exec).Clone(),
		}
		for key, out := range cm.Outputs {
			ch, err := types.New(types.ArtifactType(out.Type))
			if err != nil {
				return Pipeline{}, fmt.Errorf("component %q output %q: %w", id, key, err)
			}
			comp.Outputs[key] = ch
		}
		outputs[id] = comp.Outputs
		components = append(components, comp)
	}

	for i, cm := range m.Components {
		comp := &components[i]
		for name, in := range cm.Inputs {
			ch, err := resolveInput(comp.ID, name, in, outputs)
			if err != nil {
				return Pipeline{}, err
			}
			comp.Inputs[name] = ch
		}
	}

	p := Pipeline{Name: m.Name, Components: components}
	if err := p.Validate(); err != nil {
		return Pipeline{}, err
	}
	return p, nil
}

func resolveInput(componentID, name string, in InputManifest, outputs map[string]map[string]*types.Channel) (*types.Channel, error) {
	from := strings.TrimSpace(in.From)
	if from != "" {
		key := strings.TrimSpace(in.Key)
		if key == "" {
			return nil, fmt.Errorf("input %q of component %q references %q without an output key",
				name, componentID, from)
		}
		upstream, ok := outputs[from]
		if !ok {
			return nil, fmt.Errorf("input %q of component %q references unknown component %q",
				name, componentID, from)
		}
		ch, ok := upstream[key]
		if !ok {
			return nil, fmt.Errorf("input %q of component %q references unknown output %s.%s",
				name, componentID, from, key)
		}
		return ch, nil
	}

	if len(in.Artifacts) == 0 {
		return nil, fmt.Errorf("input %q of component %q must reference an upstream output or carry static artifacts",
			name, componentID)
	}
	typeName := strings.TrimSpace(in.Type)
	if typeName == "" {
		typeName = strings.TrimSpace(in.Artifacts[0].Type)
	}
	artifacts := make([]*types.Artifact, 0, len(in.Artifacts))
	for _, am := range in.Artifacts {
		artifacts = append(artifacts, &types.Artifact{Type: am.Type, ID: am.ID, URI: am.URI})
	}
	ch, err := types.New(types.ArtifactType(typeName), types.WithArtifacts(artifacts...))
	if err != nil {
		return nil, fmt.Errorf("input %q of component %q: %w", name, componentID, err)
	}
	return ch, nil
}
