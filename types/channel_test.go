package types

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func modelArtifact(id string) *Artifact {
	return &Artifact{Type: "Model", ID: id, URI: "s3://models/" + id}
}

func TestNewChannelStaticArtifacts(t *testing.T) {
	m1 := modelArtifact("m1")
	m2 := modelArtifact("m2")

	ch, err := New(TypeModel, WithArtifacts(m1, m2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ch.TypeName(); got != "Model" {
		t.Fatalf("expected type name Model, got %q", got)
	}
	if got := ch.Artifacts(); !reflect.DeepEqual(got, []*Artifact{m1, m2}) {
		t.Fatalf("expected artifacts [m1 m2], got %v", got)
	}
}

func TestNewChannelTypeMismatch(t *testing.T) {
	m1 := modelArtifact("m1")
	x := &Artifact{Type: "Examples", ID: "x", URI: "s3://examples/x"}

	_, err := New(TypeModel, WithArtifacts(m1, x))
	if err == nil {
		t.Fatal("expected a type mismatch error")
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %T: %v", err, err)
	}
	if mismatch.ChannelType != "Model" || mismatch.ArtifactType != "Examples" {
		t.Fatalf("expected Model vs Examples, got %q vs %q",
			mismatch.ChannelType, mismatch.ArtifactType)
	}
	if !strings.Contains(err.Error(), "Model") || !strings.Contains(err.Error(), "Examples") {
		t.Fatalf("error should name both types, got %q", err.Error())
	}
}

func TestNewChannelRequiresDescriptor(t *testing.T) {
	var confErr *ConfigurationError

	if _, err := New(nil); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for nil descriptor, got %v", err)
	}
	if _, err := New(ArtifactType("")); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for empty type name, got %v", err)
	}
	if _, err := New(ArtifactType("  ")); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for blank type name, got %v", err)
	}
}

func TestNewChannelRejectsNilArtifact(t *testing.T) {
	var confErr *ConfigurationError
	if _, err := New(TypeModel, WithArtifacts(nil)); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for nil artifact, got %v", err)
	}
}

func TestArtifactsReadStability(t *testing.T) {
	ch, err := New(TypeModel, WithArtifacts(modelArtifact("m1"), modelArtifact("m2")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := ch.Artifacts()
	second := ch.Artifacts()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected stable reads, got %v then %v", first, second)
	}
}

func TestArtifactsReturnsCopy(t *testing.T) {
	m1 := modelArtifact("m1")
	m2 := modelArtifact("m2")
	ch, err := New(TypeModel, WithArtifacts(m1, m2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ch.Artifacts()
	got[0], got[1] = got[1], got[0]

	if again := ch.Artifacts(); !reflect.DeepEqual(again, []*Artifact{m1, m2}) {
		t.Fatalf("channel collection changed through returned slice: %v", again)
	}
}

func TestBindProducerSingleAssignment(t *testing.T) {
	ch, err := New(TypeModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := ProducerInfo{ComponentID: "Trainer", Key: "model"}
	if err := ch.BindProducer(info); err != nil {
		t.Fatalf("first bind failed: %v", err)
	}
	got, ok := ch.Producer()
	if !ok {
		t.Fatal("expected a bound producer")
	}
	if got.ComponentID != "Trainer" || got.Key != "model" {
		t.Fatalf("expected Trainer.model, got %s.%s", got.ComponentID, got.Key)
	}

	// Rebinding the same value is a no-op.
	if err := ch.BindProducer(info); err != nil {
		t.Fatalf("idempotent rebind failed: %v", err)
	}

	var stateErr *StateError
	err = ch.BindProducer(ProducerInfo{ComponentID: "Tuner", Key: "model"})
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError on conflicting rebind, got %v", err)
	}
}

func TestBindProducerRejectsEmptyIdentifiers(t *testing.T) {
	ch, err := New(TypeModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var confErr *ConfigurationError
	if err := ch.BindProducer(ProducerInfo{Key: "model"}); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for empty component id, got %v", err)
	}
	if err := ch.BindProducer(ProducerInfo{ComponentID: "Trainer"}); !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for empty key, got %v", err)
	}
	if _, ok := ch.Producer(); ok {
		t.Fatal("rejected binds must not leave a producer behind")
	}
}

func TestWithProducerValidatedAtConstruction(t *testing.T) {
	var confErr *ConfigurationError
	_, err := New(TypeModel, WithProducer(ProducerInfo{}))
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}

	ch, err := New(TypeModel, WithProducer(ProducerInfo{ComponentID: "ExampleGen", Key: "examples"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := ch.Producer(); !ok || got.ComponentID != "ExampleGen" {
		t.Fatalf("expected producer ExampleGen, got %+v (bound=%v)", got, ok)
	}
}

func TestChannelString(t *testing.T) {
	ch, err := New(TypeModel, WithArtifacts(modelArtifact("m1")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repr := ch.String()
	if !strings.Contains(repr, "type_name: Model") {
		t.Fatalf("expected type name in repr, got %q", repr)
	}
	if !strings.Contains(repr, "s3://models/m1") {
		t.Fatalf("expected artifact uri in repr, got %q", repr)
	}
}
