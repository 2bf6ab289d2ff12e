package main

import (
	"fmt"

	"github.com/aretw0/factory/internal/presentation/graph"
	"github.com/aretw0/factory/pkg/record"
	"github.com/spf13/cobra"
)

func newGraphCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file>",
		Short: "Export the record types as a Mermaid class diagram",
		Long:  `Loads the definition and outputs a Mermaid diagram (classDiagram) with one class per type and an association for every field that holds a record.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := opts.load(args[0])
			if err != nil {
				return err
			}

			types := make([]*record.Type, 0, res.Types.Len())
			for pair := res.Types.Oldest(); pair != nil; pair = pair.Next() {
				types = append(types, pair.Value)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(types, res.Records))
			return err
		},
	}
}
