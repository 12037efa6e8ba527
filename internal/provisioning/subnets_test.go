package provisioning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/srmkit/internal/platform/vpc"
)

// recordingCreate returns a Create func that names subnets after their zone
// and the zones it was called for.
func recordingCreate() (func(context.Context, string) (string, error), *[]string) {
	var zones []string
	return func(_ context.Context, zoneID string) (string, error) {
		zones = append(zones, zoneID)
		return fmt.Sprintf("vsw-%s-%d", zoneID, len(zones)), nil
	}, &zones
}

func TestReconcileSubnets_SharedZoneUsesOneSubnet(t *testing.T) {
	t.Parallel()
	create, created := recordingCreate()

	got, err := ReconcileSubnets(context.Background(), ReconcileInput{
		ComputeZoneIDs: []string{"a", "b"},
		StorageZoneIDs: []string{"b", "c"},
		Create:         create,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, *created)
	assert.Equal(t, SubnetAssignment{ComputeSubnetID: "vsw-b-1", StorageSubnetID: "vsw-b-1", StorageZoneID: "b"}, got)
}

func TestReconcileSubnets_DisjointZonesUseTwoSubnets(t *testing.T) {
	t.Parallel()
	create, created := recordingCreate()

	got, err := ReconcileSubnets(context.Background(), ReconcileInput{
		ComputeZoneIDs: []string{"a"},
		StorageZoneIDs: []string{"c"},
		Create:         create,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, *created)
	assert.NotEqual(t, got.ComputeSubnetID, got.StorageSubnetID)
	assert.Equal(t, "vsw-a-1", got.ComputeSubnetID)
	assert.Equal(t, "vsw-c-2", got.StorageSubnetID)
	assert.Equal(t, "c", got.StorageZoneID)
}

func TestReconcileSubnets_ReusesExistingSubnets(t *testing.T) {
	t.Parallel()
	create, created := recordingCreate()

	got, err := ReconcileSubnets(context.Background(), ReconcileInput{
		ComputeZoneIDs: []string{"a"},
		StorageZoneIDs: []string{"c", "d"},
		Existing:       []vpc.Subnet{{ID: "vsw-old-d", ZoneID: "d"}, {ID: "vsw-old-a", ZoneID: "a"}},
		Create:         create,
	})

	require.NoError(t, err)
	assert.Empty(t, *created)
	assert.Equal(t, SubnetAssignment{ComputeSubnetID: "vsw-old-a", StorageSubnetID: "vsw-old-d", StorageZoneID: "d"}, got)
}

func TestReconcileSubnets_ComputeOnly(t *testing.T) {
	t.Parallel()
	create, created := recordingCreate()

	got, err := ReconcileSubnets(context.Background(), ReconcileInput{
		ComputeZoneIDs: []string{"a", "b"},
		Create:         create,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, *created)
	assert.Equal(t, "vsw-a-1", got.ComputeSubnetID)
	assert.Empty(t, got.StorageSubnetID)
	assert.Empty(t, got.StorageZoneID)
}

func TestReconcileSubnets_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no compute zones", func(t *testing.T) {
		t.Parallel()
		create, created := recordingCreate()
		_, err := ReconcileSubnets(context.Background(), ReconcileInput{StorageZoneIDs: []string{"a"}, Create: create})
		assert.ErrorIs(t, err, ErrNoZonesAvailable)
		assert.Empty(t, *created)
	})

	t.Run("storage subnet creation fails", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("quota exceeded")
		calls := 0
		_, err := ReconcileSubnets(context.Background(), ReconcileInput{
			ComputeZoneIDs: []string{"a"},
			StorageZoneIDs: []string{"c"},
			Create: func(_ context.Context, zoneID string) (string, error) {
				calls++
				if zoneID == "c" {
					return "", sentinel
				}
				return "vsw-a", nil
			},
		})
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 2, calls)
	})
}
