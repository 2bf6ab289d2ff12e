package main

import (
	"log/slog"

	"github.com/aretw0/factory"
	"github.com/aretw0/factory/internal/logging"
	"github.com/aretw0/factory/internal/presentation/tui"
	"github.com/aretw0/factory/pkg/definition"
	"github.com/aretw0/factory/pkg/record"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	logLevel  string
	namespace string
	color     string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "factory",
		Short:         "Factory generates record types from definition files",
		Long:          `Factory loads record types and records from YAML or JSON definition files and lets you inspect, describe, graph and validate them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.namespace, "namespace", "", "Namespace for named types (overrides the file)")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", tui.ColorAuto, "Color output (auto, always, never)")

	rootCmd.AddCommand(
		newInspectCmd(opts),
		newDescribeCmd(opts),
		newGraphCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// load reads the definition at path and applies it to a new factory.
func (o *rootOptions) load(path string, extra ...factory.Option) (*definition.Result, *factory.Factory, error) {
	file, err := definition.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return o.apply(path, file, extra...)
}

func (o *rootOptions) apply(path string, file *definition.File, extra ...factory.Option) (*definition.Result, *factory.Factory, error) {
	ns := file.Namespace
	if o.namespace != "" {
		ns = o.namespace
	}

	fopts := []factory.Option{factory.WithNamespace(ns), factory.WithLogger(o.logger)}
	f := factory.NewFactory(append(fopts, extra...)...)

	res, err := file.Apply(f)
	if err != nil {
		o.logger.Error("definition rejected", "path", path, "kind", record.KindOf(err).String(), "err", err)
		return nil, f, err
	}
	o.logger.Info("definition loaded", "path", path, "types", res.Types.Len(), "records", len(res.Records))
	return res, f, nil
}

func (o *rootOptions) palette(cmd *cobra.Command) (tui.Palette, error) {
	return tui.NewPalette(cmd.OutOrStdout(), o.color)
}
