package nas

// StorageTier is the performance class of a share.
type StorageTier string

const (
	TierPerformance StorageTier = "Performance"
	TierCapacity    StorageTier = "Capacity"
)

// FileSystemTypeStandard is the only share type this package provisions.
const FileSystemTypeStandard = "standard"

// Mount target states.
const (
	MountTargetPending  = "Pending"
	MountTargetActive   = "Active"
	MountTargetInactive = "Inactive"
	MountTargetDeleting = "Deleting"
)

// Share states that exclude a share from discovery.
const (
	ShareStopped  = "Stopped"
	ShareStopping = "Stopping"
	ShareDeleting = "Deleting"
)

// Zone lists the protocols each storage tier supports in one zone.
type Zone struct {
	ZoneID      string      `json:"ZoneId"`
	Performance ProtocolSet `json:"Performance"`
	Capacity    ProtocolSet `json:"Capacity"`
}

// ProtocolSet lists the protocols of one storage tier.
type ProtocolSet struct {
	Protocol []string `json:"Protocol"`
}

// Supports reports whether the zone advertises at least one protocol for tier.
func (z Zone) Supports(tier StorageTier) bool {
	switch tier {
	case TierPerformance:
		return len(z.Performance.Protocol) > 0
	case TierCapacity:
		return len(z.Capacity.Protocol) > 0
	default:
		return false
	}
}

// FileShare is a network file system.
type FileShare struct {
	ID          string `json:"FileSystemId"`
	Type        string `json:"FileSystemType"`
	StorageType string `json:"StorageType"`
	ZoneID      string `json:"ZoneId"`
	Status      string `json:"Status"`
	Description string `json:"Description"`

	MountTargetList MountTargetList `json:"MountTargets"`
}

// MountTargetList is the provider envelope around a share's mount targets.
type MountTargetList struct {
	MountTarget []MountTarget `json:"MountTarget"`
}

// MountTargets returns the mount targets of the share.
func (s FileShare) MountTargets() []MountTarget {
	return s.MountTargetList.MountTarget
}

// Discoverable reports whether the share is in a state that can be reused.
func (s FileShare) Discoverable() bool {
	switch s.Status {
	case ShareStopped, ShareStopping, ShareDeleting:
		return false
	default:
		return true
	}
}

// MountTarget exposes a share inside one virtual network.
type MountTarget struct {
	Domain    string `json:"MountTargetDomain"`
	NetworkID string `json:"VpcId"`
	SubnetID  string `json:"VswId"`
	Status    string `json:"Status"`
}

// Usable reports whether the target can serve clients now or soon.
// Inactive and Deleting targets are never reused.
func (m MountTarget) Usable() bool {
	return m.Status != MountTargetInactive && m.Status != MountTargetDeleting
}
