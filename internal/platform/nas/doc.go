// Package nas wraps the file storage service: zone capabilities, file shares
// (file systems) and the mount targets that expose a share inside a virtual
// network.
//
// Mount target creation is asynchronous. CreateMountTarget polls until the
// target is Active and reports ErrMountTargetTimeout otherwise.
package nas
