package provisioning

import (
	"slices"

	"github.com/imamik/srmkit/internal/platform/nas"
)

// NetworkConfig is the network a workload runs in. It is filled step by step
// while one call provisions resources and is never shared between calls.
type NetworkConfig struct {
	NetworkID       string   `json:"networkId" yaml:"network_id"`
	SubnetIDs       []string `json:"subnetIds" yaml:"subnet_ids"`
	SecurityGroupID string   `json:"securityGroupId,omitempty" yaml:"security_group_id,omitempty"`
	StorageSubnetID string   `json:"storageSubnetId,omitempty" yaml:"storage_subnet_id,omitempty"`
	StorageZoneID   string   `json:"storageZoneId,omitempty" yaml:"storage_zone_id,omitempty"`
}

func (c *NetworkConfig) clone() *NetworkConfig {
	out := *c
	out.SubnetIDs = slices.Clone(c.SubnetIDs)
	return &out
}

// ShareAction tells how the mount target of a StorageConfig was obtained.
type ShareAction string

const (
	// ShareReused means an existing share already had an Active mount target
	// in the network; nothing was created.
	ShareReused ShareAction = "reused"
	// ShareAttached means a new mount target was added to an existing share.
	ShareAttached ShareAction = "attached"
	// ShareCreated means a new share and mount target were created.
	ShareCreated ShareAction = "created"
)

// StorageConfig is the result of InitStorageConfig.
type StorageConfig struct {
	Network     *NetworkConfig `json:"network"`
	ShareID     string         `json:"shareId"`
	MountDomain string         `json:"mountDomain"`
	Action      ShareAction    `json:"action"`
}

// NetworkRequest is the input of InitNetworkConfig.
type NetworkRequest struct {
	Region string
	// Rule is validated with ParseRule.
	Rule any
	// ComputeZoneIDs are looked up from the compute service when empty.
	ComputeZoneIDs []string
	// StorageZoneIDs is empty when no storage subnet is needed.
	StorageZoneIDs []string
}

// StorageRequest is the input of InitStorageConfig.
type StorageRequest struct {
	Region string
	Rule   any
	// Network is an existing network to mount the share in. When nil or
	// empty a network is provisioned for the rule first.
	Network *NetworkConfig
	// ComputeZoneIDs is forwarded to InitNetworkConfig when a network is
	// provisioned.
	ComputeZoneIDs []string
}

// StorageZones is the outcome of storage zone selection.
type StorageZones struct {
	ZoneIDs []string
	Tier    nas.StorageTier
}

// StorageSubnetChoice is a subnet that can host a mount target.
type StorageSubnetChoice struct {
	SubnetID string
	ZoneID   string
	Tier     nas.StorageTier
}

// SubnetAssignment is the outcome of ReconcileSubnets. StorageSubnetID and
// StorageZoneID are empty when no storage zones were requested.
type SubnetAssignment struct {
	ComputeSubnetID string
	StorageSubnetID string
	StorageZoneID   string
}

// ShareLookup is the result of StorageProvisioner.FindShare: either
// ShareFound or ShareNotFound.
type ShareLookup interface {
	shareLookup()
}

// ShareFound is an existing share with an Active mount target in the network.
type ShareFound struct {
	ShareID     string
	MountDomain string
	SubnetID    string
	ZoneID      string
}

// ShareNotFound carries the shares matching the rule, none of which is
// mounted in the network yet.
type ShareNotFound struct {
	Candidates []nas.FileShare
}

func (ShareFound) shareLookup()    {}
func (ShareNotFound) shareLookup() {}
