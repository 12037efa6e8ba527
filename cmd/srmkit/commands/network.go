package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/srmkit/cmd/srmkit/handlers"
)

// Network returns the parent command for virtual network operations.
func Network() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage the virtual network of a rule",
	}
	cmd.AddCommand(networkInit())
	return cmd
}

// networkInit returns the command that converges the network of a rule.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file
//	--region: Region override
//	--rule: Rule override
//	--json: Output in JSON format
//	--verbose, -v: Debug logging
func networkInit() *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Find or create the network, subnets and security group of a rule",
		Long: `Find or create the virtual network, the compute subnet and the
security group named after the rule.

Subnets are placed in the zones the compute service supports. When
compute_zones is set in the configuration file the compute service is not
asked.

Examples:
  # Converge the network described in srmkit.yaml
  srmkit network init

  # Override the rule and print JSON
  srmkit network init --rule my-app --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.NetworkInit(cmd.Context(), opts)
		},
	}

	bindCommonFlags(cmd, &opts)

	return cmd
}
