// Package provisioning discovers or creates the network and storage
// resources a serverless workload needs, keyed by a caller supplied rule.
//
// # Flow
//
// [Orchestrator.InitNetworkConfig] ensures a virtual network named after the
// rule, reconciles one subnet per zone set and ensures a security group.
// [Orchestrator.InitStorageConfig] additionally picks a storage zone and tier,
// reuses an existing share with an Active mount target in the network when
// there is one, and otherwise attaches a mount target to a share with spare
// capacity or creates a new share.
//
// Every step is find-or-create, so calling again after a failure converges
// instead of duplicating resources. Nothing is rolled back. Concurrent calls
// for the same region and rule may race; callers serialize them.
//
// # Building blocks
//
//   - zones.go: storage tier and zone selection
//   - subnets.go: compute/storage subnet reconciliation
//   - storage.go: share lookup and mount target reuse
//   - pipeline.go: sequential phases with timing and metrics
package provisioning
