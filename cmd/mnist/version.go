package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var clean bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mnist",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if clean {
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mnist %s\n", version)
		},
	}
	cmd.Flags().BoolVar(&clean, "clean", false, "Just write version")
	return cmd
}
