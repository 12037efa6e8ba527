package testing

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"sync"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// Call is one request received by a FakeCloud.
type Call struct {
	Action string
	Params cloudapi.Params
}

// StorageZone describes the storage tiers a fake zone offers.
type StorageZone struct {
	ID          string
	Performance bool
	Capacity    bool
}

// ShareSeed describes a pre-existing file share.
type ShareSeed struct {
	Region      string
	ZoneID      string
	Type        string // defaults to "standard"
	StorageType string
	Status      string // defaults to "Running"
	Description string
}

// FakeCloud is an in-memory cloud. It answers the virtual network, security
// group, file storage, compute and identity actions the platform clients
// send, keeps every resource it creates, and records every call.
//
// New networks, subnets and mount targets start Pending and become ready
// after the configured number of status polls; a negative count keeps them
// Pending forever. Creating a subnet whose CIDR block is already used in the
// same network fails with InvalidCidrBlock.Overlapped.
type FakeCloud struct {
	mu sync.Mutex

	// NetworkPendingPolls is the number of status reads a new network
	// reports Pending before it is Available.
	NetworkPendingPolls int
	// SubnetPendingPolls works like NetworkPendingPolls for subnets.
	SubnetPendingPolls int
	// MountTargetPendingPolls works like NetworkPendingPolls for mount
	// targets, which end up Active.
	MountTargetPendingPolls int

	AccountID    string
	ComputeZones []string

	storageZones   []StorageZone
	networks       []*fakeNetwork
	subnets        []*fakeSubnet
	securityGroups []*fakeSecurityGroup
	shares         []*fakeShare

	failures map[string][]error
	calls    []Call
	nextID   int
}

type fakeNetwork struct {
	id, name, region, cidr, status string
	pending                        int
}

type fakeSubnet struct {
	id, name, description, networkID, zoneID, cidr, status string
	pending                                                int
}

type fakeSecurityGroup struct {
	id, name, networkID, region string
}

type fakeShare struct {
	id, region, zoneID, fsType, storageType, status, description string
	mountTargets                                                 []*fakeMountTarget
}

type fakeMountTarget struct {
	domain, networkID, subnetID, status string
	pending                             int
}

// NewFakeCloud creates an empty FakeCloud whose resources are ready on the
// first status read.
func NewFakeCloud() *FakeCloud {
	return &FakeCloud{
		AccountID: "1234567890",
		failures:  map[string][]error{},
	}
}

// SetStorageZones replaces the zones returned by DescribeZones.
func (f *FakeCloud) SetStorageZones(zones ...StorageZone) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.storageZones = zones
}

// FailNext makes the next len(errs) calls of action fail with errs, in order.
func (f *FakeCloud) FailNext(action string, errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[action] = append(f.failures[action], errs...)
}

// Calls returns a copy of every recorded call.
func (f *FakeCloud) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsOf returns the recorded calls of one action.
func (f *FakeCloud) CallsOf(action string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		if c.Action == action {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns how often action was called.
func (f *FakeCloud) CallCount(action string) int {
	return len(f.CallsOf(action))
}

// AddNetwork seeds an Available network and returns its id.
func (f *FakeCloud) AddNetwork(region, name, cidr string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := &fakeNetwork{id: f.newID("vpc"), name: name, region: region, cidr: cidr, status: "Available"}
	f.networks = append(f.networks, n)
	return n.id
}

// AddSubnet seeds an Available subnet and returns its id.
func (f *FakeCloud) AddSubnet(networkID, zoneID, name, cidr string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &fakeSubnet{id: f.newID("vsw"), name: name, networkID: networkID, zoneID: zoneID, cidr: cidr, status: "Available"}
	f.subnets = append(f.subnets, s)
	return s.id
}

// AddSecurityGroup seeds a security group and returns its id.
func (f *FakeCloud) AddSecurityGroup(region, networkID, name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	sg := &fakeSecurityGroup{id: f.newID("sg"), name: name, networkID: networkID, region: region}
	f.securityGroups = append(f.securityGroups, sg)
	return sg.id
}

// AddShare seeds a file share and returns its id.
func (f *FakeCloud) AddShare(seed ShareSeed) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &fakeShare{
		id:          f.newID("fs"),
		region:      seed.Region,
		zoneID:      seed.ZoneID,
		fsType:      valueOr(seed.Type, "standard"),
		storageType: valueOr(seed.StorageType, "Performance"),
		status:      valueOr(seed.Status, "Running"),
		description: seed.Description,
	}
	f.shares = append(f.shares, s)
	return s.id
}

// AddMountTarget seeds a mount target on a share and returns its domain.
func (f *FakeCloud) AddMountTarget(shareID, networkID, subnetID, status string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	share := f.findShare(shareID)
	if share == nil {
		panic("fake cloud: unknown share " + shareID)
	}
	mt := &fakeMountTarget{domain: f.mountDomain(share), networkID: networkID, subnetID: subnetID, status: status}
	share.mountTargets = append(share.mountTargets, mt)
	return mt.domain
}

// NetworkCount returns the number of networks named name.
func (f *FakeCloud) NetworkCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, nw := range f.networks {
		if nw.name == name {
			n++
		}
	}
	return n
}

// SubnetZones returns the zone of every subnet of a network, in creation order.
func (f *FakeCloud) SubnetZones(networkID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zones []string
	for _, s := range f.subnets {
		if s.networkID == networkID {
			zones = append(zones, s.zoneID)
		}
	}
	return zones
}

// Request implements cloudapi.Client.
func (f *FakeCloud) Request(ctx context.Context, action string, params cloudapi.Params, _ cloudapi.RequestOptions) (cloudapi.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Action: action, Params: maps.Clone(params)})

	if queued := f.failures[action]; len(queued) > 0 {
		f.failures[action] = queued[1:]
		return nil, queued[0]
	}

	handler, ok := f.handlers()[action]
	if !ok {
		return nil, apiError("InvalidAction.NotFound", "unsupported action "+action)
	}
	return handler(params)
}

func (f *FakeCloud) handlers() map[string]func(cloudapi.Params) (cloudapi.Response, error) {
	return map[string]func(cloudapi.Params) (cloudapi.Response, error){
		"DescribeVpcs":              f.describeVpcs,
		"DescribeVpcAttribute":      f.describeVpcAttribute,
		"CreateVpc":                 f.createVpc,
		"DescribeVSwitches":         f.describeVSwitches,
		"DescribeVSwitchAttributes": f.describeVSwitchAttributes,
		"CreateVSwitch":             f.createVSwitch,
		"DescribeSecurityGroups":    f.describeSecurityGroups,
		"CreateSecurityGroup":       f.createSecurityGroup,
		"DescribeZones":             f.describeZones,
		"DescribeFileSystems":       f.describeFileSystems,
		"CreateFileSystem":          f.createFileSystem,
		"CreateMountTarget":         f.createMountTarget,
		"DescribeMountTargets":      f.describeMountTargets,
		"GetAccountSettings":        f.getAccountSettings,
		"GetCallerIdentity":         f.getCallerIdentity,
	}
}

// --- virtual networks ---

func (f *FakeCloud) describeVpcs(p cloudapi.Params) (cloudapi.Response, error) {
	var matched []any
	for _, n := range f.networks {
		if n.region != str(p, "RegionId") {
			continue
		}
		if name := str(p, "VpcName"); name != "" && n.name != name {
			continue
		}
		if id := str(p, "VpcId"); id != "" && n.id != id {
			continue
		}
		matched = append(matched, f.networkView(n))
	}
	return paged(p, "Vpcs", "Vpc", matched, 10), nil
}

func (f *FakeCloud) describeVpcAttribute(p cloudapi.Params) (cloudapi.Response, error) {
	n := f.findNetwork(str(p, "VpcId"))
	if n == nil {
		return nil, apiError("InvalidVpcId.NotFound", "network not found")
	}
	return f.networkView(n), nil
}

func (f *FakeCloud) createVpc(p cloudapi.Params) (cloudapi.Response, error) {
	n := &fakeNetwork{
		id:      f.newID("vpc"),
		name:    str(p, "VpcName"),
		region:  str(p, "RegionId"),
		cidr:    str(p, "CidrBlock"),
		status:  "Pending",
		pending: f.NetworkPendingPolls,
	}
	f.networks = append(f.networks, n)
	return cloudapi.Response{"VpcId": n.id, "RequestId": f.newID("req")}, nil
}

func (f *FakeCloud) networkView(n *fakeNetwork) map[string]any {
	n.status, n.pending = advance(n.status, n.pending, "Available")
	return map[string]any{
		"VpcId":     n.id,
		"VpcName":   n.name,
		"RegionId":  n.region,
		"CidrBlock": n.cidr,
		"Status":    n.status,
	}
}

// --- subnets ---

func (f *FakeCloud) describeVSwitches(p cloudapi.Params) (cloudapi.Response, error) {
	var matched []any
	for _, s := range f.subnets {
		if s.networkID != str(p, "VpcId") {
			continue
		}
		if name := str(p, "VSwitchName"); name != "" && s.name != name {
			continue
		}
		if zone := str(p, "ZoneId"); zone != "" && s.zoneID != zone {
			continue
		}
		matched = append(matched, subnetView(s))
	}
	return paged(p, "VSwitches", "VSwitch", matched, 10), nil
}

func (f *FakeCloud) describeVSwitchAttributes(p cloudapi.Params) (cloudapi.Response, error) {
	s := f.findSubnet(str(p, "VSwitchId"))
	if s == nil {
		return nil, apiError("InvalidVSwitchId.NotFound", "subnet not found")
	}
	s.status, s.pending = advance(s.status, s.pending, "Available")
	return subnetView(s), nil
}

func (f *FakeCloud) createVSwitch(p cloudapi.Params) (cloudapi.Response, error) {
	networkID := str(p, "VpcId")
	if f.findNetwork(networkID) == nil {
		return nil, apiError("InvalidVpcId.NotFound", "network not found")
	}
	if str(p, "ZoneId") == "" {
		return nil, apiError("MissingParameter", "ZoneId is mandatory")
	}
	cidr := str(p, "CidrBlock")
	for _, s := range f.subnets {
		if s.networkID == networkID && s.cidr == cidr {
			return nil, apiError(cloudapi.CodeCIDROverlapped, "the CIDR block "+cidr+" overlaps")
		}
	}

	s := &fakeSubnet{
		id:          f.newID("vsw"),
		name:        str(p, "VSwitchName"),
		description: str(p, "Description"),
		networkID:   networkID,
		zoneID:      str(p, "ZoneId"),
		cidr:        cidr,
		status:      "Pending",
		pending:     f.SubnetPendingPolls,
	}
	f.subnets = append(f.subnets, s)
	return cloudapi.Response{"VSwitchId": s.id}, nil
}

func subnetView(s *fakeSubnet) map[string]any {
	return map[string]any{
		"VSwitchId":   s.id,
		"VSwitchName": s.name,
		"Description": s.description,
		"VpcId":       s.networkID,
		"ZoneId":      s.zoneID,
		"CidrBlock":   s.cidr,
		"Status":      s.status,
	}
}

// --- security groups ---

func (f *FakeCloud) describeSecurityGroups(p cloudapi.Params) (cloudapi.Response, error) {
	var matched []any
	for _, sg := range f.securityGroups {
		if sg.networkID != str(p, "VpcId") {
			continue
		}
		if name := str(p, "SecurityGroupName"); name != "" && sg.name != name {
			continue
		}
		matched = append(matched, map[string]any{
			"SecurityGroupId":   sg.id,
			"SecurityGroupName": sg.name,
			"VpcId":             sg.networkID,
		})
	}
	return cloudapi.Response{
		"SecurityGroups": map[string]any{"SecurityGroup": matched},
		"TotalCount":     len(matched),
	}, nil
}

func (f *FakeCloud) createSecurityGroup(p cloudapi.Params) (cloudapi.Response, error) {
	sg := &fakeSecurityGroup{
		id:        f.newID("sg"),
		name:      str(p, "SecurityGroupName"),
		networkID: str(p, "VpcId"),
		region:    str(p, "RegionId"),
	}
	f.securityGroups = append(f.securityGroups, sg)
	return cloudapi.Response{"SecurityGroupId": sg.id}, nil
}

// --- file storage ---

func (f *FakeCloud) describeZones(_ cloudapi.Params) (cloudapi.Response, error) {
	zones := make([]any, 0, len(f.storageZones))
	for _, z := range f.storageZones {
		zones = append(zones, map[string]any{
			"ZoneId":      z.ID,
			"Performance": map[string]any{"Protocol": protocols(z.Performance)},
			"Capacity":    map[string]any{"Protocol": protocols(z.Capacity)},
		})
	}
	return cloudapi.Response{"Zones": map[string]any{"Zone": zones}}, nil
}

func (f *FakeCloud) describeFileSystems(p cloudapi.Params) (cloudapi.Response, error) {
	var matched []any
	for _, s := range f.shares {
		if s.region != str(p, "RegionId") {
			continue
		}
		targets := make([]any, 0, len(s.mountTargets))
		for _, mt := range s.mountTargets {
			targets = append(targets, mountTargetView(mt))
		}
		matched = append(matched, map[string]any{
			"FileSystemId":   s.id,
			"FileSystemType": s.fsType,
			"StorageType":    s.storageType,
			"ZoneId":         s.zoneID,
			"Status":         s.status,
			"Description":    s.description,
			"MountTargets":   map[string]any{"MountTarget": targets},
		})
	}
	return paged(p, "FileSystems", "FileSystem", matched, 10), nil
}

func (f *FakeCloud) createFileSystem(p cloudapi.Params) (cloudapi.Response, error) {
	zoneID := str(p, "ZoneId")
	if zoneID == "" {
		return nil, apiError("MissingParameter", "ZoneId is mandatory")
	}
	s := &fakeShare{
		id:          f.newID("fs"),
		region:      str(p, "RegionId"),
		zoneID:      zoneID,
		fsType:      "standard",
		storageType: str(p, "StorageType"),
		status:      "Running",
		description: str(p, "Description"),
	}
	f.shares = append(f.shares, s)
	return cloudapi.Response{"FileSystemId": s.id}, nil
}

func (f *FakeCloud) createMountTarget(p cloudapi.Params) (cloudapi.Response, error) {
	share := f.findShare(str(p, "FileSystemId"))
	if share == nil {
		return nil, apiError("InvalidFileSystem.NotFound", "file system not found")
	}
	mt := &fakeMountTarget{
		domain:    f.mountDomain(share),
		networkID: str(p, "VpcId"),
		subnetID:  str(p, "VSwitchId"),
		status:    "Pending",
		pending:   f.MountTargetPendingPolls,
	}
	share.mountTargets = append(share.mountTargets, mt)
	return cloudapi.Response{"MountTargetDomain": mt.domain}, nil
}

func (f *FakeCloud) describeMountTargets(p cloudapi.Params) (cloudapi.Response, error) {
	share := f.findShare(str(p, "FileSystemId"))
	if share == nil {
		return nil, apiError("InvalidFileSystem.NotFound", "file system not found")
	}
	var matched []any
	for _, mt := range share.mountTargets {
		if domain := str(p, "MountTargetDomain"); domain != "" && mt.domain != domain {
			continue
		}
		mt.status, mt.pending = advance(mt.status, mt.pending, "Active")
		matched = append(matched, mountTargetView(mt))
	}
	return cloudapi.Response{
		"MountTargets": map[string]any{"MountTarget": matched},
		"TotalCount":   len(matched),
	}, nil
}

func mountTargetView(mt *fakeMountTarget) map[string]any {
	return map[string]any{
		"MountTargetDomain": mt.domain,
		"VpcId":             mt.networkID,
		"VswId":             mt.subnetID,
		"Status":            mt.status,
	}
}

// --- compute and identity ---

func (f *FakeCloud) getAccountSettings(p cloudapi.Params) (cloudapi.Response, error) {
	if str(p, "AccountId") != f.AccountID {
		return nil, apiError("AccessDenied", "account mismatch")
	}
	zones := make([]any, 0, len(f.ComputeZones))
	for _, z := range f.ComputeZones {
		zones = append(zones, z)
	}
	return cloudapi.Response{"availableAZs": zones}, nil
}

func (f *FakeCloud) getCallerIdentity(_ cloudapi.Params) (cloudapi.Response, error) {
	return cloudapi.Response{"AccountId": f.AccountID}, nil
}

// --- helpers ---

func (f *FakeCloud) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%04d", prefix, f.nextID)
}

func (f *FakeCloud) mountDomain(share *fakeShare) string {
	f.nextID++
	return fmt.Sprintf("%s-%d.%s.nas.example.com", share.id, f.nextID, share.region)
}

func (f *FakeCloud) findNetwork(id string) *fakeNetwork {
	for _, n := range f.networks {
		if n.id == id {
			return n
		}
	}
	return nil
}

func (f *FakeCloud) findSubnet(id string) *fakeSubnet {
	for _, s := range f.subnets {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (f *FakeCloud) findShare(id string) *fakeShare {
	for _, s := range f.shares {
		if s.id == id {
			return s
		}
	}
	return nil
}

// advance moves a Pending resource one poll closer to ready.
func advance(status string, pending int, ready string) (string, int) {
	if status != "Pending" || pending < 0 {
		return status, pending
	}
	if pending == 0 {
		return ready, 0
	}
	return status, pending - 1
}

// paged slices items into the provider's page envelope. Requests without a
// page size use defaultSize.
func paged(p cloudapi.Params, list, item string, items []any, defaultSize int) cloudapi.Response {
	size := num(p, "PageSize", defaultSize)
	page := num(p, "PageNumber", 1)
	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))
	return cloudapi.Response{
		list:         map[string]any{item: append([]any{}, items[start:end]...)},
		"TotalCount": len(items),
		"PageNumber": page,
		"PageSize":   size,
	}
}

func protocols(enabled bool) []any {
	if enabled {
		return []any{"nfs"}
	}
	return []any{}
}

func apiError(code, message string) error {
	return &cloudapi.APIError{Code: code, Message: message, RequestID: "fake", HTTPStatus: 400}
}

func str(p cloudapi.Params, key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func num(p cloudapi.Params, key string, def int) int {
	s := str(p, key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
