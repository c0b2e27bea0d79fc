package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/animus-labs/conduit-go/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pipeline.yaml>",
	Short: "Validate a pipeline manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadPipeline(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pipeline:   %s\n", p.Name)
	fmt.Fprintf(out, "Components: %d\n", len(p.Components))
	for _, edge := range p.Edges() {
		fmt.Fprintf(out, "  %s -> %s\n", edge.From, edge.To)
	}
	fmt.Fprintln(out, "OK")
	return nil
}

func loadPipeline(path string) (pipeline.Pipeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Pipeline{}, fmt.Errorf("read manifest: %w", err)
	}
	m, err := pipeline.ParseManifest(raw)
	if err != nil {
		return pipeline.Pipeline{}, err
	}
	return m.Build()
}
