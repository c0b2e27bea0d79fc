package types

// TypeDescriptor identifies an artifact type by a stable, unique name.
// Channels are constrained to exactly one descriptor; anything that can
// report a type name can act as one.
type TypeDescriptor interface {
	TypeName() string
}

// ArtifactType is a string-backed TypeDescriptor.
type ArtifactType string

func (t ArtifactType) TypeName() string { return string(t) }

// Standard artifact types understood by the built-in components.
const (
	TypeExamples          ArtifactType = "Examples"
	TypeExternalPath      ArtifactType = "ExternalPath"
	TypeExampleStatistics ArtifactType = "ExampleStatistics"
	TypeSchema            ArtifactType = "Schema"
	TypeTransformGraph    ArtifactType = "TransformGraph"
	TypeModel             ArtifactType = "Model"
	TypeModelEvaluation   ArtifactType = "ModelEvaluation"
	TypeModelBlessing     ArtifactType = "ModelBlessing"
	TypeInfraBlessing     ArtifactType = "InfraBlessing"
	TypePushedModel       ArtifactType = "PushedModel"
)

// StandardTypes returns the catalog of built-in artifact types keyed by name.
func StandardTypes() map[string]ArtifactType {
	catalog := []ArtifactType{
		TypeExamples,
		TypeExternalPath,
		TypeExampleStatistics,
		TypeSchema,
		TypeTransformGraph,
		TypeModel,
		TypeModelEvaluation,
		TypeModelBlessing,
		TypeInfraBlessing,
		TypePushedModel,
	}
	out := make(map[string]ArtifactType, len(catalog))
	for _, t := range catalog {
		out[t.TypeName()] = t
	}
	return out
}
