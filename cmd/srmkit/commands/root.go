// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the srmkit CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "srmkit",
		Short:         "Provision network and file storage for serverless workloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Network())
	cmd.AddCommand(Storage())
	cmd.AddCommand(Version())

	return cmd
}
