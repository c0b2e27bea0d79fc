package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/animus-labs/conduit-go/compiler"
)

var compileFlags struct {
	output string
}

var compileCmd = &cobra.Command{
	Use:   "compile <pipeline.yaml>",
	Short: "Compile a pipeline manifest into an execution plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&compileFlags.output, "output", "o", "", "Write the plan to a file instead of stdout")
}

func runCompile(cmd *cobra.Command, args []string) error {
	p, err := loadPipeline(args[0])
	if err != nil {
		return err
	}

	plan, err := compiler.Compile(&p)
	if err != nil {
		return fmt.Errorf("compile %s: %w", p.Name, err)
	}
	raw, err := compiler.MarshalPlan(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	slog.Info("compiled pipeline", "pipeline", p.Name, "components", len(plan.Components))

	if compileFlags.output != "" {
		if err := os.WriteFile(compileFlags.output, raw, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
