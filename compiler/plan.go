package compiler

import (
	"fmt"

	"github.com/animus-labs/conduit-go/pipeline"
)

// Plan is the compiled, orchestrator-facing snapshot of a pipeline:
// components in deterministic execution order with their input lookup
// queries and declared outputs.
type Plan struct {
	Pipeline   string
	Components []PlanComponent
}

type PlanComponent struct {
	ID      string
	Type    string
	Inputs  []InputBinding
	Outputs []OutputDecl
}

// InputBinding describes how a component input resolves at orchestration
// time: either through a metadata lookup query against its producer, or
// from a statically declared artifact set.
type InputBinding struct {
	Name       string
	TypeName   string
	Query      *ArtifactQuery
	StaticURIs []string
}

type OutputDecl struct {
	Key      string
	TypeName string
}

// Compile validates the pipeline, binds producer metadata, and assembles
// the execution plan.
func Compile(p *pipeline.Pipeline) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	if err := BindProducers(p); err != nil {
		return Plan{}, err
	}

	ordered, err := p.TopoSort()
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Pipeline: p.Name, Components: make([]PlanComponent, 0, len(ordered))}
	for _, comp := range ordered {
		pc := PlanComponent{ID: comp.ID, Type: comp.Type}
		for _, name := range comp.InputKeys() {
			ch := comp.Inputs[name]
			binding := InputBinding{Name: name, TypeName: ch.TypeName()}
			if query, err := QueryFor(ch); err == nil {
				binding.Query = &query
			} else {
				artifacts := ch.Artifacts()
				if len(artifacts) == 0 {
					return Plan{}, fmt.Errorf("input %s.%s: %w", comp.ID, name, err)
				}
				binding.StaticURIs = make([]string, 0, len(artifacts))
				for _, artifact := range artifacts {
					binding.StaticURIs = append(binding.StaticURIs, artifact.URI)
				}
			}
			pc.Inputs = append(pc.Inputs, binding)
		}
		for _, key := range comp.OutputKeys() {
			pc.Outputs = append(pc.Outputs, OutputDecl{
				Key:      key,
				TypeName: comp.Outputs[key].TypeName(),
			})
		}
		plan.Components = append(plan.Components, pc)
	}
	return plan, nil
}
