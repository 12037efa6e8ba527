package nas

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
	"github.com/imamik/srmkit/internal/util/retry"
)

// DefaultAccessGroup is the permission group attached to new mount targets.
const DefaultAccessGroup = "DEFAULT_VPC_GROUP_NAME"

// ErrMountTargetTimeout is returned when a new mount target never becomes
// Active. It matches retry.ErrTimeout as well.
var ErrMountTargetTimeout = fmt.Errorf("mount target never became active: %w", retry.ErrTimeout)

// CreateMountTarget attaches a share to a subnet of a network, waits until
// the target is Active and returns its domain.
func (c *Client) CreateMountTarget(ctx context.Context, region, shareID, networkID, subnetID string) (string, error) {
	resp, err := c.api.Request(ctx, "CreateMountTarget", cloudapi.Params{
		"RegionId":        region,
		"FileSystemId":    shareID,
		"VpcId":           networkID,
		"VSwitchId":       subnetID,
		"NetworkType":     "Vpc",
		"AccessGroupName": DefaultAccessGroup,
	}, cloudapi.PostOptions)
	if err != nil {
		return "", fmt.Errorf("failed to create mount target for share %s: %w", shareID, err)
	}

	domain := cloudapi.String(resp, "MountTargetDomain")
	if domain == "" {
		return "", errors.New("create mount target response carries no MountTargetDomain")
	}
	c.logger.V(1).Info("mount target created, waiting for it to become active", "shareID", shareID, "domain", domain)

	if err := c.waitForMountTarget(ctx, region, shareID, domain); err != nil {
		return "", err
	}
	return domain, nil
}

// DescribeMountTargets returns the mount targets of a share. A non-empty
// domain narrows the result to that target.
func (c *Client) DescribeMountTargets(ctx context.Context, region, shareID, domain string) ([]MountTarget, error) {
	params := cloudapi.Params{
		"RegionId":     region,
		"FileSystemId": shareID,
	}
	if domain != "" {
		params["MountTargetDomain"] = domain
	}

	resp, err := c.api.Request(ctx, "DescribeMountTargets", params, cloudapi.PostOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe mount targets of share %s: %w", shareID, err)
	}
	return cloudapi.DecodeList[MountTarget](resp, "MountTargets", "MountTarget")
}

func (c *Client) waitForMountTarget(ctx context.Context, region, shareID, domain string) error {
	_, err := retry.PollUntil(ctx, "mount target "+domain,
		retry.PollConfig{Interval: c.timeouts.MountTargetPollInterval, MaxAttempts: c.timeouts.MountTargetPollAttempts},
		func(ctx context.Context) (string, error) {
			targets, err := c.DescribeMountTargets(ctx, region, shareID, domain)
			if err != nil || len(targets) == 0 {
				return "", err
			}
			c.logger.V(1).Info("mount target status", "domain", domain, "status", targets[0].Status)
			return targets[0].Status, nil
		},
		func(status string) bool { return status == MountTargetActive },
		func(status string) string { return status },
	)
	if errors.Is(err, retry.ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrMountTargetTimeout, err)
	}
	return err
}
