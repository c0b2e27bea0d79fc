package pipeline

import (
	"errors"
	"sort"
	"strings"

	"github.com/animus-labs/conduit-go/types"
)

// Component is a declared pipeline stage: a unit of work whose typed
// inputs and outputs are wired to other stages through channels.
type Component struct {
	ID             string
	Type           string
	Inputs         map[string]*types.Channel
	Outputs        map[string]*types.Channel
	ExecProperties types.Metadata
}

func (c Component) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("component id is required")
	}
	if strings.TrimSpace(c.Type) == "" {
		return errors.New("component type is required")
	}
	for name, ch := range c.Inputs {
		if strings.TrimSpace(name) == "" {
			return errors.New("component input name is required")
		}
		if ch == nil {
			return errors.New("component input " + name + " has no channel")
		}
	}
	for name, ch := range c.Outputs {
		if strings.TrimSpace(name) == "" {
			return errors.New("component output name is required")
		}
		if ch == nil {
			return errors.New("component output " + name + " has no channel")
		}
	}
	return nil
}

// InputKeys returns the input names in deterministic order.
func (c Component) InputKeys() []string {
	return sortedKeys(c.Inputs)
}

// OutputKeys returns the output names in deterministic order.
func (c Component) OutputKeys() []string {
	return sortedKeys(c.Outputs)
}

func sortedKeys(channels map[string]*types.Channel) []string {
	keys := make([]string, 0, len(channels))
	for key := range channels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
