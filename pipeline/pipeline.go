package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/animus-labs/conduit-go/types"
)

// Pipeline is an authored graph of components wired through typed channels.
type Pipeline struct {
	Name       string
	Components []Component
}

// Edge is a producer-to-consumer dependency derived from channel wiring.
type Edge struct {
	From string
	To   string
}

// Validate performs strict structural validation: identifier checks,
// channel wiring checks, and dependency cycle detection. All issues are
// aggregated into a single ValidationError.
func (p Pipeline) Validate() error {
	issues := &ValidationError{}

	if strings.TrimSpace(p.Name) == "" {
		issues.Add("pipeline name is required")
	}
	if len(p.Components) == 0 {
		issues.Add("pipeline must declare at least one component")
		return issues.OrNil()
	}

	ids := make(map[string]struct{}, len(p.Components))
	for i, comp := range p.Components {
		if err := comp.Validate(); err != nil {
			issues.Addf("component[%d]: %s", i, err.Error())
			continue
		}
		if _, exists := ids[comp.ID]; exists {
			issues.Addf("duplicate component id %q", comp.ID)
		}
		ids[comp.ID] = struct{}{}
	}

	producers := p.producersByChannel()
	for _, comp := range p.Components {
		for _, name := range comp.InputKeys() {
			ch := comp.Inputs[name]
			if ch == nil {
				continue
			}
			if _, ok := producers[ch]; ok {
				continue
			}
			if len(ch.Artifacts()) == 0 {
				issues.Addf("input %q of component %q is not produced by any pipeline component and carries no static artifacts",
					name, comp.ID)
			}
		}
	}

	adj := make(map[string][]string, len(p.Components))
	for _, edge := range p.Edges() {
		adj[edge.From] = append(adj[edge.From], edge.To)
	}
	if hasCycle(adj, ids) {
		issues.Add("component graph contains a cycle")
	}

	return issues.OrNil()
}

// Edges derives the dependency edges implied by channel wiring: a component
// consuming another component's output channel depends on it.
func (p Pipeline) Edges() []Edge {
	producers := p.producersByChannel()
	seen := make(map[Edge]struct{})
	edges := make([]Edge, 0)
	for _, comp := range p.Components {
		for _, name := range comp.InputKeys() {
			ch := comp.Inputs[name]
			producer, ok := producers[ch]
			if !ok || producer == comp.ID {
				continue
			}
			edge := Edge{From: producer, To: comp.ID}
			if _, dup := seen[edge]; dup {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// TopoSort returns the components in deterministic dependency order.
func (p Pipeline) TopoSort() ([]Component, error) {
	byID := make(map[string]Component, len(p.Components))
	for _, comp := range p.Components {
		byID[comp.ID] = comp
	}

	inDegree := make(map[string]int, len(byID))
	adj := make(map[string][]string, len(byID))
	for id := range byID {
		inDegree[id] = 0
	}
	for _, edge := range p.Edges() {
		adj[edge.From] = append(adj[edge.From], edge.To)
		inDegree[edge.To]++
	}

	ready := make([]string, 0, len(byID))
	for id, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	ordered := make([]Component, 0, len(byID))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byID[id])
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
				sort.Strings(ready)
			}
		}
	}

	if len(ordered) != len(byID) {
		return nil, fmt.Errorf("component graph contains a cycle")
	}
	return ordered, nil
}

func (p Pipeline) producersByChannel() map[*types.Channel]string {
	producers := make(map[*types.Channel]string)
	for _, comp := range p.Components {
		for _, ch := range comp.Outputs {
			if ch != nil {
				producers[ch] = comp.ID
			}
		}
	}
	return producers
}

func hasCycle(adj map[string][]string, nodes map[string]struct{}) bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(nodes))
	var visit func(string) bool
	visit = func(node string) bool {
		switch state[node] {
		case visiting:
			return true
		case done:
			return false
		}
		state[node] = visiting
		for _, next := range adj[node] {
			if visit(next) {
				return true
			}
		}
		state[node] = done
		return false
	}

	for node := range nodes {
		if state[node] == unvisited {
			if visit(node) {
				return true
			}
		}
	}
	return false
}
