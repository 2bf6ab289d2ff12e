package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/factory/pkg/record"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON bool
		fields bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the records of a definition file",
		Long:  `Builds every record declared in the file and prints its display form, one field per line with --fields, or a JSON object per record with --json.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := opts.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				for _, r := range res.Records {
					if err := enc.Encode(r); err != nil {
						return err
					}
				}
				return nil
			}

			p, err := opts.palette(cmd)
			if err != nil {
				return err
			}
			for _, r := range res.Records {
				if !fields {
					fmt.Fprintln(out, p.Value(r.Inspect()))
					continue
				}
				fmt.Fprintln(out, p.Type(r.Type().String()))
				for field, v := range r.Pairs() {
					fmt.Fprintf(out, "  %s = %s\n", p.Field(field), p.Value(record.InspectValue(v)))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON objects")
	cmd.Flags().BoolVar(&fields, "fields", false, "Print one field per line")
	return cmd
}
