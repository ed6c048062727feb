package cli

import (
	"fmt"

	"github.com/openbar-dev/oastrim/internal/config"
	"github.com/openbar-dev/oastrim/internal/filter"
	"github.com/openbar-dev/oastrim/internal/loader"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "oastrim <input> <output>",
		Short:   "Trim an OpenAPI spec down to its whitelisted public contract",
		Version: "1.0.0",
		Args:    cobra.ExactArgs(2),
		RunE:    runTrim,
	}

	config.BindFlags(root)

	return root
}

func runTrim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	result, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	if cfg.ValidateSpec {
		if errs := result.Validate(); len(errs) > 0 {
			for _, e := range errs {
				cmd.PrintErrf("Validation: %s\n", e)
			}
			return fmt.Errorf("input document failed validation (%d errors)", len(errs))
		}
	}

	summary := filter.Apply(result.Root, cfg)

	if err := result.WriteFile(args[1]); err != nil {
		return fmt.Errorf("writing filtered spec: %w", err)
	}

	cmd.PrintErrf("Filtered OpenAPI %s\n", result.Version)
	cmd.PrintErrf("  Paths: %d\n", summary.PathsKept)
	cmd.PrintErrf("  Operations: %d\n", summary.OperationsKept)
	cmd.PrintErrf("  Schemas: %d\n", summary.SchemasKept)
	cmd.PrintErrf("  Security schemes: %d\n", summary.SecuritySchemesKept)
	cmd.PrintErrf("Written: %s\n", args[1])

	return nil
}
