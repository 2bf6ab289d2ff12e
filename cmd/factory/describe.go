package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/factory/internal/presentation/tui"
	"github.com/aretw0/factory/pkg/record"
	"github.com/spf13/cobra"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Render the record types of a definition file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := opts.load(args[0])
			if err != nil {
				return err
			}

			var sb strings.Builder
			for pair := res.Types.Oldest(); pair != nil; pair = pair.Next() {
				describeType(&sb, pair.Key, pair.Value)
			}

			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
				return err
			}

			p, err := opts.palette(cmd)
			if err != nil {
				return err
			}
			render, err := tui.NewRenderer(p)
			if err != nil {
				return err
			}
			out, err := render(sb.String())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without rendering")
	return cmd
}

func describeType(sb *strings.Builder, key string, t *record.Type) {
	fmt.Fprintf(sb, "## %s\n\n", t.String())
	if key != t.Name() {
		fmt.Fprintf(sb, "Referenced as `%s`.\n\n", key)
	}
	if t.Size() == 0 {
		sb.WriteString("No fields.\n\n")
		return
	}

	s := t.Schema()
	sb.WriteString("| # | field | type |\n|---|---|---|\n")
	for i, f := range t.Fields() {
		kind := "any"
		if ft, ok := s[f]; ok {
			kind = ft.Name()
		}
		fmt.Fprintf(sb, "| %d | %s | %s |\n", i, f, kind)
	}
	sb.WriteString("\n")
}
