package vpc

// Resource states reported by the provider.
const (
	StatusAvailable = "Available"
	StatusPending   = "Pending"
)

// Network is a virtual network.
type Network struct {
	ID          string `json:"VpcId"`
	Name        string `json:"VpcName"`
	CIDRBlock   string `json:"CidrBlock"`
	Status      string `json:"Status"`
	RegionID    string `json:"RegionId"`
	Description string `json:"Description"`
}

// Subnet is an address range of a virtual network bound to one zone.
type Subnet struct {
	ID          string `json:"VSwitchId"`
	Name        string `json:"VSwitchName"`
	NetworkID   string `json:"VpcId"`
	ZoneID      string `json:"ZoneId"`
	CIDRBlock   string `json:"CidrBlock"`
	Status      string `json:"Status"`
	Description string `json:"Description"`
}

// SecurityGroup is a set of firewall rules attached to a virtual network.
type SecurityGroup struct {
	ID        string `json:"SecurityGroupId"`
	Name      string `json:"SecurityGroupName"`
	NetworkID string `json:"VpcId"`
}

// NetworkFilter narrows FindNetworks. Empty fields are not sent.
type NetworkFilter struct {
	Name string
	ID   string
}

// SubnetFilter narrows FindSubnets. Empty fields are not sent.
type SubnetFilter struct {
	Name   string
	ZoneID string
}

// SubnetCreateOpts holds all parameters for creating a subnet.
type SubnetCreateOpts struct {
	Region      string
	NetworkID   string
	ZoneID      string
	Name        string
	Description string
	// CIDRBlock is the first candidate block. Defaults to DefaultSubnetCIDR.
	CIDRBlock string
}

// ZoneIDs returns the zone of every subnet, in order.
func ZoneIDs(subnets []Subnet) []string {
	ids := make([]string, 0, len(subnets))
	for _, s := range subnets {
		ids = append(ids, s.ZoneID)
	}
	return ids
}
