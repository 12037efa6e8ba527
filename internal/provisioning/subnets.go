package provisioning

import (
	"context"
	"fmt"

	"github.com/imamik/srmkit/internal/platform/vpc"
)

// ReconcileInput is the input of ReconcileSubnets.
type ReconcileInput struct {
	ComputeZoneIDs []string
	// StorageZoneIDs may be empty when no storage subnet is needed.
	StorageZoneIDs []string
	// Existing are the subnets of the network, in provider order.
	Existing []vpc.Subnet
	// Create creates a subnet in zoneID and returns its id.
	Create func(ctx context.Context, zoneID string) (string, error)
}

// ReconcileSubnets decides which subnets compute and storage use.
//
// When some zone supports both, one subnet in such a zone serves both.
// Otherwise compute gets a subnet in a compute zone and, if storage zones
// were requested, storage gets its own subnet in a storage zone. Existing
// subnets are preferred; new ones go to the first candidate zone.
func ReconcileSubnets(ctx context.Context, in ReconcileInput) (SubnetAssignment, error) {
	if len(in.ComputeZoneIDs) == 0 {
		return SubnetAssignment{}, fmt.Errorf("%w: no compute zones", ErrNoZonesAvailable)
	}

	if shared := intersectZones(in.ComputeZoneIDs, in.StorageZoneIDs); len(shared) > 0 {
		id, zoneID, err := findOrCreateSubnet(ctx, shared, in)
		if err != nil {
			return SubnetAssignment{}, err
		}
		return SubnetAssignment{ComputeSubnetID: id, StorageSubnetID: id, StorageZoneID: zoneID}, nil
	}

	var out SubnetAssignment
	id, _, err := findOrCreateSubnet(ctx, in.ComputeZoneIDs, in)
	if err != nil {
		return SubnetAssignment{}, err
	}
	out.ComputeSubnetID = id

	if len(in.StorageZoneIDs) == 0 {
		return out, nil
	}
	out.StorageSubnetID, out.StorageZoneID, err = findOrCreateSubnet(ctx, in.StorageZoneIDs, in)
	if err != nil {
		return SubnetAssignment{}, err
	}
	return out, nil
}

func findOrCreateSubnet(ctx context.Context, zoneIDs []string, in ReconcileInput) (string, string, error) {
	zoneID, existing := SelectZoneForSubnets(zoneIDs, in.Existing)
	if existing != nil {
		return existing.ID, zoneID, nil
	}
	id, err := in.Create(ctx, zoneID)
	if err != nil {
		return "", "", err
	}
	return id, zoneID, nil
}
