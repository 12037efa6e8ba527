package nas

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// FindFileShares lists the reusable shares of a region. Shares that are
// stopped, stopping or being deleted are skipped. A non-empty description
// keeps only shares whose description matches it exactly.
func (c *Client) FindFileShares(ctx context.Context, region, description string) ([]FileShare, error) {
	all, _, err := cloudapi.Paginate(ctx, pageSize, func(ctx context.Context, pageNumber int) (*cloudapi.Page[FileShare], error) {
		c.logger.V(1).Info("describing file shares", "region", region, "pageNumber", pageNumber)
		resp, err := c.api.Request(ctx, "DescribeFileSystems", cloudapi.Params{
			"RegionId":   region,
			"PageSize":   pageSize,
			"PageNumber": pageNumber,
		}, cloudapi.PostOptions)
		if err != nil {
			return nil, err
		}

		items, err := cloudapi.DecodeList[FileShare](resp, "FileSystems", "FileSystem")
		if err != nil {
			return nil, err
		}
		return &cloudapi.Page[FileShare]{
			Items:      items,
			TotalCount: cloudapi.Int(resp, "TotalCount"),
			PageNumber: cloudapi.Int(resp, "PageNumber"),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe file shares: %w", err)
	}

	shares := make([]FileShare, 0, len(all))
	for _, share := range all {
		if !share.Discoverable() {
			continue
		}
		if description != "" && share.Description != description {
			continue
		}
		shares = append(shares, share)
	}
	c.logger.V(1).Info("found file shares", "total", len(all), "matching", len(shares))
	return shares, nil
}

// CreateShare creates an NFS share in a zone and returns its id.
func (c *Client) CreateShare(ctx context.Context, region, zoneID string, tier StorageTier, description string) (string, error) {
	resp, err := c.api.Request(ctx, "CreateFileSystem", cloudapi.Params{
		"RegionId":     region,
		"ZoneId":       zoneID,
		"StorageType":  string(tier),
		"Description":  description,
		"ProtocolType": "NFS",
	}, cloudapi.PostOptions)
	if err != nil {
		return "", fmt.Errorf("failed to create file share in zone %s: %w", zoneID, err)
	}

	id := cloudapi.String(resp, "FileSystemId")
	if id == "" {
		return "", errors.New("create file share response carries no FileSystemId")
	}
	c.logger.V(1).Info("file share created", "shareID", id, "zoneID", zoneID, "tier", tier)
	return id, nil
}
