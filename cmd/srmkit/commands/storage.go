package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/srmkit/cmd/srmkit/handlers"
)

// Storage returns the parent command for shared file storage operations.
func Storage() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage the shared file storage of a rule",
	}
	cmd.AddCommand(storageInit())
	return cmd
}

// storageInit returns the command that converges the file share and mount
// target of a rule.
//
// Optional flags (besides the common ones):
//
//	--network-id: Existing virtual network to mount the share in
//	--subnet-ids: Existing subnets of that network
func storageInit() *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Find or create a file share and a mount target for a rule",
		Long: `Find or create a file share described by the rule and make sure it
has an active mount target in the workload network.

Without --network-id a network is provisioned for the rule first, with a
subnet in a zone that offers file storage. With --network-id and
--subnet-ids the share is mounted in that network, reusing one of the
given subnets when its zone offers file storage.

Examples:
  # Provision network and storage for the rule in srmkit.yaml
  srmkit storage init

  # Mount storage in an existing network
  srmkit storage init --network-id vpc-123 --subnet-ids vsw-1,vsw-2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.StorageInit(cmd.Context(), opts)
		},
	}

	bindCommonFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.NetworkID, "network-id", "", "Existing virtual network id (requires --subnet-ids)")
	cmd.Flags().StringSliceVar(&opts.SubnetIDs, "subnet-ids", nil, "Existing subnet ids (requires --network-id)")

	return cmd
}
