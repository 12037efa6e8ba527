// Package vpc wraps the virtual network service: virtual networks, subnets
// (VSwitches) and the security groups that live in them.
//
// # Architecture
//
//   - client.go: Client construction and options
//   - types.go: Network, Subnet and SecurityGroup as returned by the provider
//   - network.go: network discovery, creation and readiness polling
//   - subnet.go: subnet discovery and creation with CIDR conflict retry
//   - cidr.go: default blocks, CIDR bumping and derivation from a network
//   - security_group.go: find-or-create of security groups
//   - operations.go: the generic find-or-create operation
//
// Every operation is region scoped and stateless; the CIDR cursor used while
// retrying a subnet creation is local to the call.
package vpc
