package vpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
	"github.com/imamik/srmkit/internal/util/retry"
)

// FindSubnets lists the subnets of a network, following every page.
func (c *Client) FindSubnets(ctx context.Context, region, networkID string, filter SubnetFilter) ([]Subnet, error) {
	subnets, _, err := cloudapi.Paginate(ctx, pageSize, func(ctx context.Context, pageNumber int) (*cloudapi.Page[Subnet], error) {
		params := cloudapi.Params{
			"RegionId":   region,
			"VpcId":      networkID,
			"PageSize":   pageSize,
			"PageNumber": pageNumber,
		}
		if filter.Name != "" {
			params["VSwitchName"] = filter.Name
		}
		if filter.ZoneID != "" {
			params["ZoneId"] = filter.ZoneID
		}

		resp, err := c.api.Request(ctx, "DescribeVSwitches", params, cloudapi.PostOptions)
		if err != nil {
			return nil, err
		}
		items, err := cloudapi.DecodeList[Subnet](resp, "VSwitches", "VSwitch")
		if err != nil {
			return nil, err
		}
		return &cloudapi.Page[Subnet]{
			Items:      items,
			TotalCount: cloudapi.Int(resp, "TotalCount"),
			PageNumber: cloudapi.Int(resp, "PageNumber"),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnets of network %s: %w", networkID, err)
	}
	return subnets, nil
}

// DescribeSubnet returns the attributes of one subnet.
func (c *Client) DescribeSubnet(ctx context.Context, region, subnetID string) (*Subnet, error) {
	resp, err := c.api.Request(ctx, "DescribeVSwitchAttributes", cloudapi.Params{
		"RegionId":  region,
		"VSwitchId": subnetID,
	}, cloudapi.PostOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe subnet %s: %w", subnetID, err)
	}

	subnet, err := cloudapi.Decode[Subnet](map[string]any(resp))
	if err != nil {
		return nil, err
	}
	return &subnet, nil
}

// CreateSubnet creates a subnet and waits until it is Available.
//
// When the provider rejects the candidate block as overlapping, the third
// octet is bumped by CIDRStep and the call is repeated, at most
// Timeouts.CIDRRetryMax times. Any other error, an exhausted budget or an
// exhausted octet surfaces the provider error of the last attempt.
func (c *Client) CreateSubnet(ctx context.Context, opts SubnetCreateOpts) (string, error) {
	cidr := opts.CIDRBlock
	if cidr == "" {
		cidr = DefaultSubnetCIDR
	}

	var subnetID string
	var lastErr error
	err := retry.Do(ctx, func(attempt int) error {
		if attempt > 0 {
			next, err := NextSubnetCIDR(cidr)
			if err != nil {
				c.logger.V(1).Info("no subnet CIDR candidates left", "cidr", cidr, "error", err.Error())
				return retry.Fatal(lastErr)
			}
			c.logger.V(1).Info("subnet CIDR overlaps, retrying", "previous", cidr, "next", next, "attempt", attempt)
			cidr = next
		}

		id, err := c.createSubnetOnce(ctx, opts, cidr)
		if err != nil {
			if !cloudapi.IsCIDROverlapped(err) {
				return retry.Fatal(err)
			}
			lastErr = err
			return err
		}
		subnetID = id
		return nil
	}, retry.WithMaxRetries(c.timeouts.CIDRRetryMax), retry.WithInitialDelay(0))
	if err != nil {
		return "", fmt.Errorf("failed to create subnet %s in zone %s: %w", opts.Name, opts.ZoneID, err)
	}

	c.logger.V(1).Info("subnet created, waiting for it to become available", "subnetID", subnetID, "cidr", cidr)
	if err := c.waitForSubnet(ctx, opts.Region, subnetID); err != nil {
		return "", err
	}
	return subnetID, nil
}

func (c *Client) createSubnetOnce(ctx context.Context, opts SubnetCreateOpts, cidr string) (string, error) {
	resp, err := c.api.Request(ctx, "CreateVSwitch", cloudapi.Params{
		"RegionId":    opts.Region,
		"VpcId":       opts.NetworkID,
		"ZoneId":      opts.ZoneID,
		"VSwitchName": opts.Name,
		"Description": opts.Description,
		"CidrBlock":   cidr,
		"ClientToken": uuid.NewString(),
	}, cloudapi.PostOptions)
	if err != nil {
		return "", err
	}

	id := cloudapi.String(resp, "VSwitchId")
	if id == "" {
		return "", errors.New("create subnet response carries no VSwitchId")
	}
	return id, nil
}

func (c *Client) waitForSubnet(ctx context.Context, region, subnetID string) error {
	_, err := retry.PollUntil(ctx, "subnet "+subnetID,
		retry.PollConfig{Interval: c.timeouts.NetworkPollInterval, MaxAttempts: c.timeouts.NetworkPollAttempts},
		func(ctx context.Context) (string, error) {
			subnet, err := c.DescribeSubnet(ctx, region, subnetID)
			if err != nil {
				return "", err
			}
			return subnet.Status, nil
		},
		func(status string) bool { return status == StatusAvailable },
		func(status string) string { return status },
	)
	return err
}
