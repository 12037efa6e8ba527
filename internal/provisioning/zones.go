package provisioning

import (
	"fmt"
	"slices"

	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
)

// SelectStorageZones returns every zone offering the Performance tier, or
// failing that every zone offering the Capacity tier. Zone order is kept.
func SelectStorageZones(zones []nas.Zone) (StorageZones, error) {
	for _, tier := range []nas.StorageTier{nas.TierPerformance, nas.TierCapacity} {
		var ids []string
		for _, z := range zones {
			if z.Supports(tier) {
				ids = append(ids, z.ZoneID)
			}
		}
		if len(ids) > 0 {
			return StorageZones{ZoneIDs: ids, Tier: tier}, nil
		}
	}
	return StorageZones{}, fmt.Errorf("%w: none of %d zones offers file storage", ErrNoZonesAvailable, len(zones))
}

// SelectZoneForSubnets returns the zone of the first existing subnet that
// lies in one of the candidate zones, together with that subnet. Without such
// a subnet it returns the first candidate and a nil subnet, and the caller
// creates one there.
func SelectZoneForSubnets(candidateZoneIDs []string, existing []vpc.Subnet) (string, *vpc.Subnet) {
	for i := range existing {
		if slices.Contains(candidateZoneIDs, existing[i].ZoneID) {
			return existing[i].ZoneID, &existing[i]
		}
	}
	if len(candidateZoneIDs) == 0 {
		return "", nil
	}
	return candidateZoneIDs[0], nil
}

// SelectStorageZoneForSubnets picks a subnet to mount storage in among
// subnets the caller already has: the first one in a Performance zone, else
// the first one in a Capacity zone.
func SelectStorageZoneForSubnets(zones []nas.Zone, subnets []vpc.Subnet) (StorageSubnetChoice, error) {
	byID := make(map[string]nas.Zone, len(zones))
	for _, z := range zones {
		byID[z.ZoneID] = z
	}

	for _, tier := range []nas.StorageTier{nas.TierPerformance, nas.TierCapacity} {
		for _, s := range subnets {
			if z, ok := byID[s.ZoneID]; ok && z.Supports(tier) {
				return StorageSubnetChoice{SubnetID: s.ID, ZoneID: s.ZoneID, Tier: tier}, nil
			}
		}
	}
	return StorageSubnetChoice{}, fmt.Errorf("%w: zones %v", ErrNoReusableZoneConfiguration, vpc.ZoneIDs(subnets))
}

// intersectZones returns the ids present in both lists, in the order of a.
func intersectZones(a, b []string) []string {
	var out []string
	for _, id := range a {
		if slices.Contains(b, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
