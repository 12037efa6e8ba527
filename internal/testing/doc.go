// Package testing provides test utilities shared by the provisioning and
// platform packages.
//
//   - FakeCloud: an in-memory cloud implementing cloudapi.Client for the
//     network, security group, file storage, compute and identity actions
//   - TestContext, TestLogger: per-test context and logr logger
//
// Usage:
//
//	cloud := testing.NewFakeCloud()
//	cloud.SetStorageZones(testing.StorageZone{ID: "z1", Performance: true})
//	cloud.FailNext("CreateVSwitch", overlapErr)
//	client := vpc.NewClient(cloud, vpc.WithTimeouts(config.TestTimeouts()))
package testing
