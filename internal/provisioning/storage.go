package provisioning

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/srmkit/internal/platform/nas"
)

// maxMountTargetsPerShare is the number of mount targets below which an
// existing share still accepts a new one.
const maxMountTargetsPerShare = 2

// StorageProvisioner finds or creates file shares and their mount targets.
type StorageProvisioner struct {
	storage StorageService
	logger  logr.Logger
}

// NewStorageProvisioner creates a StorageProvisioner.
func NewStorageProvisioner(storage StorageService, logger logr.Logger) *StorageProvisioner {
	return &StorageProvisioner{storage: storage, logger: logger}
}

// FindShare looks for a share described by rule that already has an Active
// mount target in networkID. Without one it returns the shares described by
// rule as candidates for ReuseOrCreateMountTarget.
func (p *StorageProvisioner) FindShare(ctx context.Context, region, networkID, rule string) (ShareLookup, error) {
	shares, err := p.storage.FindFileShares(ctx, region, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to find file shares for %s: %w", rule, err)
	}

	for _, share := range shares {
		for _, mt := range share.MountTargets() {
			// Pending targets are not reused; Inactive and Deleting never are.
			if mt.Status != nas.MountTargetActive || mt.NetworkID != networkID {
				continue
			}
			p.logger.V(1).Info("found mounted share", "share", share.ID, "domain", mt.Domain)
			return ShareFound{ShareID: share.ID, MountDomain: mt.Domain, SubnetID: mt.SubnetID, ZoneID: share.ZoneID}, nil
		}
	}
	return ShareNotFound{Candidates: shares}, nil
}

// MountRequest is the input of ReuseOrCreateMountTarget.
type MountRequest struct {
	Region      string
	ZoneID      string
	Tier        nas.StorageTier
	NetworkID   string
	SubnetID    string
	Description string
	// Candidates are the shares returned by FindShare.
	Candidates []nas.FileShare
}

// Mount is a share with a mount target in the requested network.
type Mount struct {
	ShareID     string
	MountDomain string
	Action      ShareAction
}

// ReuseOrCreateMountTarget attaches a mount target to the first standard
// candidate share in the zone that has room for one. A failed attach is
// logged and the next candidate is tried; when none is left a new share is
// created and mounted.
func (p *StorageProvisioner) ReuseOrCreateMountTarget(ctx context.Context, req MountRequest) (Mount, error) {
	for _, share := range req.Candidates {
		if share.Type != nas.FileSystemTypeStandard || share.ZoneID != req.ZoneID {
			continue
		}
		if len(share.MountTargets()) >= maxMountTargetsPerShare {
			continue
		}

		domain, err := p.storage.CreateMountTarget(ctx, req.Region, share.ID, req.NetworkID, req.SubnetID)
		if err != nil {
			if ctx.Err() != nil {
				return Mount{}, err
			}
			p.logger.Error(err, "failed to attach mount target to existing share", "share", share.ID)
			continue
		}
		return Mount{ShareID: share.ID, MountDomain: domain, Action: ShareAttached}, nil
	}

	shareID, err := p.storage.CreateShare(ctx, req.Region, req.ZoneID, req.Tier, req.Description)
	if err != nil {
		return Mount{}, fmt.Errorf("failed to provision file share for %s: %w", req.Description, err)
	}
	p.logger.V(1).Info("created file share", "share", shareID, "zone", req.ZoneID, "tier", req.Tier)

	domain, err := p.storage.CreateMountTarget(ctx, req.Region, shareID, req.NetworkID, req.SubnetID)
	if err != nil {
		return Mount{}, fmt.Errorf("failed to mount share %s in %s: %w", shareID, req.NetworkID, err)
	}
	return Mount{ShareID: shareID, MountDomain: domain, Action: ShareCreated}, nil
}
