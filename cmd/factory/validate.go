package main

import (
	"fmt"

	"github.com/aretw0/factory"
	"github.com/aretw0/factory/internal/validator"
	"github.com/aretw0/factory/pkg/definition"
	"github.com/aretw0/factory/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a definition file",
		Long:  `Checks the structure of the file and reports every problem found, then generates every type and builds every record.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			metrics := observability.NewMetrics(reg)

			file, err := definition.Load(args[0])
			if err != nil {
				return err
			}
			if err := validator.ValidateDefinition(file); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			res, f, err := opts.apply(args[0], file, factory.WithObserver(metrics))
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			reg.MustRegister(observability.RegistryGauge(f.Registry()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Definition is valid: %d types, %d records\n", res.Types.Len(), len(res.Records))
			if !stats {
				return nil
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				var total float64
				for _, m := range mf.GetMetric() {
					switch {
					case m.GetCounter() != nil:
						total += m.GetCounter().GetValue()
					case m.GetGauge() != nil:
						total += m.GetGauge().GetValue()
					}
				}
				fmt.Fprintf(out, "%s %g\n", mf.GetName(), total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Print generation metrics")
	return cmd
}
