package provisioning

import (
	"context"

	"github.com/imamik/srmkit/internal/platform/fc"
	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
)

// NetworkService is the subset of the virtual network client the
// orchestrator uses.
type NetworkService interface {
	EnsureNetwork(ctx context.Context, region, name string) (string, error)
	DescribeNetwork(ctx context.Context, region, networkID string) (*vpc.Network, error)
	FindSubnets(ctx context.Context, region, networkID string, filter vpc.SubnetFilter) ([]vpc.Subnet, error)
	CreateSubnet(ctx context.Context, opts vpc.SubnetCreateOpts) (string, error)
	EnsureSecurityGroup(ctx context.Context, region, networkID, name string) (string, error)
}

// StorageService is the subset of the file storage client the orchestrator
// uses.
type StorageService interface {
	DescribeZones(ctx context.Context, region string) ([]nas.Zone, error)
	FindFileShares(ctx context.Context, region, description string) ([]nas.FileShare, error)
	CreateShare(ctx context.Context, region, zoneID string, tier nas.StorageTier, description string) (string, error)
	CreateMountTarget(ctx context.Context, region, shareID, networkID, subnetID string) (string, error)
}

// ComputeZoneLister reports the zones the serverless compute service can run
// in.
type ComputeZoneLister interface {
	AvailableZones(ctx context.Context, region string) ([]string, error)
}

var (
	_ NetworkService    = (*vpc.Client)(nil)
	_ StorageService    = (*nas.Client)(nil)
	_ ComputeZoneLister = (*fc.Client)(nil)
)
