package provisioning

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
)

// Orchestrator provisions the network and storage of a rule. It keeps no
// state between calls.
type Orchestrator struct {
	network NetworkService
	storage StorageService
	compute ComputeZoneLister
	shares  *StorageProvisioner
	logger  logr.Logger
	metrics *Metrics
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithMetrics records phase and share metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// NewOrchestrator creates an Orchestrator. compute may be nil when every
// NetworkRequest names its compute zones.
func NewOrchestrator(network NetworkService, storage StorageService, compute ComputeZoneLister, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		network: network,
		storage: storage,
		compute: compute,
		logger:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.shares = NewStorageProvisioner(storage, o.logger)
	return o
}

// InitNetworkConfig ensures a network named after the rule with a compute
// subnet, a storage subnet when storage zones are given, and a security
// group.
func (o *Orchestrator) InitNetworkConfig(ctx context.Context, req NetworkRequest) (*NetworkConfig, error) {
	rule, err := validateRequest(req.Region, req.Rule)
	if err != nil {
		return nil, err
	}

	computeZones := slices.Clone(req.ComputeZoneIDs)
	cfg := &NetworkConfig{}

	phases := []phase{
		{name: "compute zones", run: func(ctx context.Context) error {
			if len(computeZones) > 0 {
				return nil
			}
			if o.compute == nil {
				return fmt.Errorf("%w: no compute zones given and no compute service configured", ErrNoZonesAvailable)
			}
			zones, err := o.compute.AvailableZones(ctx, req.Region)
			if err != nil {
				return fmt.Errorf("failed to list compute zones: %w", err)
			}
			if len(zones) == 0 {
				return fmt.Errorf("%w: compute service reports no zones in %s", ErrNoZonesAvailable, req.Region)
			}
			computeZones = zones
			return nil
		}},
		{name: "network", run: func(ctx context.Context) error {
			id, err := o.network.EnsureNetwork(ctx, req.Region, rule)
			if err != nil {
				return err
			}
			cfg.NetworkID = id
			return nil
		}},
		{name: "subnets", run: func(ctx context.Context) error {
			existing, err := o.network.FindSubnets(ctx, req.Region, cfg.NetworkID, vpc.SubnetFilter{})
			if err != nil {
				return fmt.Errorf("failed to list subnets of %s: %w", cfg.NetworkID, err)
			}
			assignment, err := ReconcileSubnets(ctx, ReconcileInput{
				ComputeZoneIDs: computeZones,
				StorageZoneIDs: req.StorageZoneIDs,
				Existing:       existing,
				Create: func(ctx context.Context, zoneID string) (string, error) {
					return o.network.CreateSubnet(ctx, vpc.SubnetCreateOpts{
						Region:      req.Region,
						NetworkID:   cfg.NetworkID,
						ZoneID:      zoneID,
						Name:        rule,
						Description: rule,
					})
				},
			})
			if err != nil {
				return err
			}
			cfg.SubnetIDs = []string{assignment.ComputeSubnetID}
			cfg.StorageSubnetID = assignment.StorageSubnetID
			cfg.StorageZoneID = assignment.StorageZoneID
			return nil
		}},
		{name: "security group", run: func(ctx context.Context) error {
			id, err := o.network.EnsureSecurityGroup(ctx, req.Region, cfg.NetworkID, rule)
			if err != nil {
				return err
			}
			cfg.SecurityGroupID = id
			return nil
		}},
	}

	if err := o.runPhases(ctx, "network", phases); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitStorageConfig returns a file share mounted in the rule's network.
//
// Without req.Network a network is provisioned first, with its storage
// subnet in a zone offering the best storage tier. A share described by the
// rule that is already mounted in the network is returned as is. Otherwise a
// storage subnet is chosen among the given subnets, or created, and a mount
// target is attached to a spare share or a new one.
func (o *Orchestrator) InitStorageConfig(ctx context.Context, req StorageRequest) (*StorageConfig, error) {
	rule, err := validateRequest(req.Region, req.Rule)
	if err != nil {
		return nil, err
	}
	if err := validateNetworkConfig(req.Network); err != nil {
		return nil, err
	}

	supplied := req.Network != nil && req.Network.NetworkID != ""
	network := &NetworkConfig{}
	if supplied {
		network = req.Network.clone()
	}
	var (
		tier   nas.StorageTier
		lookup ShareLookup
	)

	discover := []phase{}
	if !supplied {
		discover = append(discover, phase{name: "network", run: func(ctx context.Context) error {
			zones, err := o.storage.DescribeZones(ctx, req.Region)
			if err != nil {
				return fmt.Errorf("failed to list storage zones: %w", err)
			}
			selected, err := SelectStorageZones(zones)
			if err != nil {
				return err
			}
			cfg, err := o.InitNetworkConfig(ctx, NetworkRequest{
				Region:         req.Region,
				Rule:           rule,
				ComputeZoneIDs: req.ComputeZoneIDs,
				StorageZoneIDs: selected.ZoneIDs,
			})
			if err != nil {
				return err
			}
			network, tier = cfg, selected.Tier
			return nil
		}})
	}
	discover = append(discover, phase{name: "share lookup", run: func(ctx context.Context) error {
		lookup, err = o.shares.FindShare(ctx, req.Region, network.NetworkID, rule)
		return err
	}})

	if err := o.runPhases(ctx, "storage discovery", discover); err != nil {
		return nil, err
	}

	var candidates []nas.FileShare
	switch l := lookup.(type) {
	case ShareFound:
		if network.StorageSubnetID == "" {
			network.StorageSubnetID, network.StorageZoneID = l.SubnetID, l.ZoneID
		}
		o.metrics.recordShare(ShareReused)
		o.logger.Info("reusing mounted file share", "share", l.ShareID, "domain", l.MountDomain)
		return &StorageConfig{Network: network, ShareID: l.ShareID, MountDomain: l.MountDomain, Action: ShareReused}, nil
	case ShareNotFound:
		candidates = l.Candidates
	}

	var mount Mount
	provision := []phase{}
	if supplied {
		provision = append(provision, phase{name: "storage subnet", run: func(ctx context.Context) error {
			choice, err := o.selectStorageSubnet(ctx, req.Region, rule, network)
			if err != nil {
				return err
			}
			network.StorageSubnetID, network.StorageZoneID, tier = choice.SubnetID, choice.ZoneID, choice.Tier
			return nil
		}})
	}
	provision = append(provision, phase{name: "mount target", run: func(ctx context.Context) error {
		mount, err = o.shares.ReuseOrCreateMountTarget(ctx, MountRequest{
			Region:      req.Region,
			ZoneID:      network.StorageZoneID,
			Tier:        tier,
			NetworkID:   network.NetworkID,
			SubnetID:    network.StorageSubnetID,
			Description: rule,
			Candidates:  candidates,
		})
		return err
	}})

	if err := o.runPhases(ctx, "storage", provision); err != nil {
		return nil, err
	}

	o.metrics.recordShare(mount.Action)
	return &StorageConfig{Network: network, ShareID: mount.ShareID, MountDomain: mount.MountDomain, Action: mount.Action}, nil
}

// selectStorageSubnet picks the subnet of a caller supplied network that
// hosts the mount target. Supplied subnets in a storage zone win; without
// one, a subnet of the network in a storage zone is reused or created with a
// CIDR block derived from the network's.
func (o *Orchestrator) selectStorageSubnet(ctx context.Context, region, rule string, network *NetworkConfig) (StorageSubnetChoice, error) {
	all, err := o.network.FindSubnets(ctx, region, network.NetworkID, vpc.SubnetFilter{})
	if err != nil {
		return StorageSubnetChoice{}, fmt.Errorf("failed to list subnets of %s: %w", network.NetworkID, err)
	}
	zones, err := o.storage.DescribeZones(ctx, region)
	if err != nil {
		return StorageSubnetChoice{}, fmt.Errorf("failed to list storage zones: %w", err)
	}

	var supplied []vpc.Subnet
	for _, s := range all {
		if slices.Contains(network.SubnetIDs, s.ID) {
			supplied = append(supplied, s)
		}
	}

	if len(supplied) == 0 {
		o.logger.V(1).Info("supplied subnets not found in network", "network", network.NetworkID, "subnets", network.SubnetIDs)
	} else {
		choice, err := SelectStorageZoneForSubnets(zones, supplied)
		if err == nil {
			return choice, nil
		}
		if !errors.Is(err, ErrNoReusableZoneConfiguration) {
			return StorageSubnetChoice{}, err
		}
		o.logger.V(1).Info("no supplied subnet lies in a storage zone", "zones", vpc.ZoneIDs(supplied))
	}

	selected, err := SelectStorageZones(zones)
	if err != nil {
		return StorageSubnetChoice{}, err
	}
	zoneID, existing := SelectZoneForSubnets(selected.ZoneIDs, all)
	if existing != nil {
		return StorageSubnetChoice{SubnetID: existing.ID, ZoneID: zoneID, Tier: selected.Tier}, nil
	}

	described, err := o.network.DescribeNetwork(ctx, region, network.NetworkID)
	if err != nil {
		return StorageSubnetChoice{}, err
	}
	cidr, err := vpc.SubnetCIDRFor(described.CIDRBlock)
	if err != nil {
		return StorageSubnetChoice{}, fmt.Errorf("failed to derive subnet block for network %s: %w", network.NetworkID, err)
	}

	id, err := o.network.CreateSubnet(ctx, vpc.SubnetCreateOpts{
		Region:      region,
		NetworkID:   network.NetworkID,
		ZoneID:      zoneID,
		Name:        rule,
		Description: rule,
		CIDRBlock:   cidr,
	})
	if err != nil {
		return StorageSubnetChoice{}, err
	}
	return StorageSubnetChoice{SubnetID: id, ZoneID: zoneID, Tier: selected.Tier}, nil
}
