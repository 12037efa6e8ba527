package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/srmkit/cmd/srmkit/handlers"
)

// bindCommonFlags registers the flags shared by every provisioning command.
func bindCommonFlags(cmd *cobra.Command, opts *handlers.Options) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: srmkit.yaml if present)")
	cmd.Flags().StringVar(&opts.Region, "region", "", "Region to provision in (overrides the config file)")
	cmd.Flags().StringVar(&opts.Rule, "rule", "", "Rule naming the provisioned resources (overrides the config file)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every cloud API request to stderr")
}
