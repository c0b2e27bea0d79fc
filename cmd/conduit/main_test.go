package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const manifest = `
name: taxi
components:
  - id: example-gen
    type: CsvExampleGen
    inputs:
      input_base:
        artifacts:
          - type: ExternalPath
            uri: /data/csv
    outputs:
      examples:
        type: Examples
  - id: trainer
    type: Trainer
    inputs:
      examples:
        from: example-gen
        key: examples
    outputs:
      model:
        type: Model
`

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestValidateCommand(t *testing.T) {
	var out bytes.Buffer
	validateCmd.SetOut(&out)

	if err := runValidate(validateCmd, []string{writeManifest(t, manifest)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Pipeline:   taxi") || !strings.Contains(got, "example-gen -> trainer") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestCompileCommand(t *testing.T) {
	var out bytes.Buffer
	compileCmd.SetOut(&out)

	if err := runCompile(compileCmd, []string{writeManifest(t, manifest)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, want := range []string{`"pipeline": "taxi"`, `"componentId": "example-gen"`, `"typeName": "Model"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in plan output:\n%s", want, got)
		}
	}
}

func TestValidateCommandBadManifest(t *testing.T) {
	bad := `
name: broken
components:
  - id: trainer
    type: Trainer
    inputs:
      examples:
        from: missing
        key: examples
`
	if err := runValidate(validateCmd, []string{writeManifest(t, bad)}); err == nil {
		t.Fatal("expected error for unknown reference")
	}
}
