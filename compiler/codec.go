package compiler

import "encoding/json"

// MarshalPlan serializes a compiled plan with stable field names for
// handoff to an orchestrator.
func MarshalPlan(plan Plan) ([]byte, error) {
	payload := planPayload{
		Pipeline:   plan.Pipeline,
		Components: make([]planComponentPayload, 0, len(plan.Components)),
	}
	for _, comp := range plan.Components {
		pc := planComponentPayload{
			ID:      comp.ID,
			Type:    comp.Type,
			Inputs:  make([]inputBindingPayload, 0, len(comp.Inputs)),
			Outputs: make([]outputDeclPayload, 0, len(comp.Outputs)),
		}
		for _, in := range comp.Inputs {
			ip := inputBindingPayload{
				Name:       in.Name,
				TypeName:   in.TypeName,
				StaticURIs: in.StaticURIs,
			}
			if in.Query != nil {
				ip.Query = &artifactQueryPayload{
					ComponentID: in.Query.ComponentID,
					OutputKey:   in.Query.OutputKey,
					TypeName:    in.Query.TypeName,
				}
			}
			pc.Inputs = append(pc.Inputs, ip)
		}
		for _, out := range comp.Outputs {
			pc.Outputs = append(pc.Outputs, outputDeclPayload{
				Key:      out.Key,
				TypeName: out.TypeName,
			})
		}
		payload.Components = append(payload.Components, pc)
	}
	return json.MarshalIndent(payload, "", "  ")
}

// UnmarshalPlan parses a persisted plan back into its in-memory form.
func UnmarshalPlan(raw []byte) (Plan, error) {
	var payload planPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Plan{}, err
	}
	plan := Plan{
		Pipeline:   payload.Pipeline,
		Components: make([]PlanComponent, 0, len(payload.Components)),
	}
	for _, pc := range payload.Components {
		comp := PlanComponent{ID: pc.ID, Type: pc.Type}
		for _, ip := range pc.Inputs {
			in := InputBinding{
				Name:       ip.Name,
				TypeName:   ip.TypeName,
				StaticURIs: ip.StaticURIs,
			}
			if ip.Query != nil {
				in.Query = &ArtifactQuery{
					ComponentID: ip.Query.ComponentID,
					OutputKey:   ip.Query.OutputKey,
					TypeName:    ip.Query.TypeName,
				}
			}
			comp.Inputs = append(comp.Inputs, in)
		}
		for _, op := range pc.Outputs {
			comp.Outputs = append(comp.Outputs, OutputDecl{Key: op.Key, TypeName: op.TypeName})
		}
		plan.Components = append(plan.Components, comp)
	}
	return plan, nil
}

type planPayload struct {
	Pipeline   string                 `json:"pipeline"`
	Components []planComponentPayload `json:"components"`
}

type planComponentPayload struct {
	ID      string                `json:"id"`
	Type    string                `json:"type"`
	Inputs  []inputBindingPayload `json:"inputs,omitempty"`
	Outputs []outputDeclPayload   `json:"outputs,omitempty"`
}

type inputBindingPayload struct {
	Name       string                `json:"name"`
	TypeName   string                `json:"typeName"`
	Query      *artifactQueryPayload `json:"query,omitempty"`
	StaticURIs []string              `json:"staticUris,omitempty"`
}

type artifactQueryPayload struct {
	ComponentID string `json:"componentId"`
	OutputKey   string `json:"outputKey"`
	TypeName    string `json:"typeName"`
}

type outputDeclPayload struct {
	Key      string `json:"key"`
	TypeName string `json:"typeName"`
}
