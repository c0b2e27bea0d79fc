// Package types holds the pipeline-authoring data model: artifacts, the
// type descriptors that tag them, and the typed channels that connect a
// producing component's outputs to downstream consumers.
//
// Channels are build-then-freeze: the type and artifact collection are
// fixed and validated at construction, and only producer metadata may be
// attached afterwards, exactly once. Every channel-level violation
// surfaces at construction or at the binding call, never at read time.
package types
