package provisioning

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
)

// mockNetwork is a mock implementation of NetworkService.
type mockNetwork struct {
	mock.Mock
}

func (m *mockNetwork) EnsureNetwork(ctx context.Context, region, name string) (string, error) {
	args := m.Called(ctx, region, name)
	return args.String(0), args.Error(1)
}

func (m *mockNetwork) DescribeNetwork(ctx context.Context, region, networkID string) (*vpc.Network, error) {
	args := m.Called(ctx, region, networkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vpc.Network), args.Error(1)
}

func (m *mockNetwork) FindSubnets(ctx context.Context, region, networkID string, filter vpc.SubnetFilter) ([]vpc.Subnet, error) {
	args := m.Called(ctx, region, networkID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vpc.Subnet), args.Error(1)
}

func (m *mockNetwork) CreateSubnet(ctx context.Context, opts vpc.SubnetCreateOpts) (string, error) {
	args := m.Called(ctx, opts)
	return args.String(0), args.Error(1)
}

func (m *mockNetwork) EnsureSecurityGroup(ctx context.Context, region, networkID, name string) (string, error) {
	args := m.Called(ctx, region, networkID, name)
	return args.String(0), args.Error(1)
}

// mockStorage is a mock implementation of StorageService.
type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) DescribeZones(ctx context.Context, region string) ([]nas.Zone, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nas.Zone), args.Error(1)
}

func (m *mockStorage) FindFileShares(ctx context.Context, region, description string) ([]nas.FileShare, error) {
	args := m.Called(ctx, region, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nas.FileShare), args.Error(1)
}

func (m *mockStorage) CreateShare(ctx context.Context, region, zoneID string, tier nas.StorageTier, description string) (string, error) {
	args := m.Called(ctx, region, zoneID, tier, description)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) CreateMountTarget(ctx context.Context, region, shareID, networkID, subnetID string) (string, error) {
	args := m.Called(ctx, region, shareID, networkID, subnetID)
	return args.String(0), args.Error(1)
}

// mockCompute is a mock implementation of ComputeZoneLister.
type mockCompute struct {
	mock.Mock
}

func (m *mockCompute) AvailableZones(ctx context.Context, region string) ([]string, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
