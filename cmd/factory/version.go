package main

import (
	"fmt"

	"github.com/aretw0/factory"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of factory",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "factory version %s\n", factory.Version)
		},
	}
}
