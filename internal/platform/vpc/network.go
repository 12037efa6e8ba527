package vpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
	"github.com/imamik/srmkit/internal/util/retry"
)

// FindNetworks lists the networks of a region, following every page.
func (c *Client) FindNetworks(ctx context.Context, region string, filter NetworkFilter) ([]Network, error) {
	networks, _, err := cloudapi.Paginate(ctx, pageSize, func(ctx context.Context, pageNumber int) (*cloudapi.Page[Network], error) {
		params := cloudapi.Params{
			"RegionId":   region,
			"PageSize":   pageSize,
			"PageNumber": pageNumber,
		}
		if filter.Name != "" {
			params["VpcName"] = filter.Name
		}
		if filter.ID != "" {
			params["VpcId"] = filter.ID
		}

		resp, err := c.api.Request(ctx, "DescribeVpcs", params, cloudapi.PostOptions)
		if err != nil {
			return nil, err
		}
		items, err := cloudapi.DecodeList[Network](resp, "Vpcs", "Vpc")
		if err != nil {
			return nil, err
		}
		return &cloudapi.Page[Network]{
			Items:      items,
			TotalCount: cloudapi.Int(resp, "TotalCount"),
			PageNumber: cloudapi.Int(resp, "PageNumber"),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe networks: %w", err)
	}
	return networks, nil
}

// DescribeNetwork returns the attributes of one network.
func (c *Client) DescribeNetwork(ctx context.Context, region, networkID string) (*Network, error) {
	resp, err := c.api.Request(ctx, "DescribeVpcAttribute", cloudapi.Params{
		"RegionId": region,
		"VpcId":    networkID,
	}, cloudapi.PostOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe network %s: %w", networkID, err)
	}

	network, err := cloudapi.Decode[Network](map[string]any(resp))
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// CreateNetwork creates a network named name and waits until it is
// Available. A network that never becomes Available is reported as a
// retry.ErrTimeout carrying the network id.
func (c *Client) CreateNetwork(ctx context.Context, region, name string) (string, error) {
	resp, err := c.api.Request(ctx, "CreateVpc", cloudapi.Params{
		"RegionId":    region,
		"VpcName":     name,
		"Description": name,
		"CidrBlock":   DefaultNetworkCIDR,
		"ClientToken": uuid.NewString(),
	}, cloudapi.PostOptions)
	if err != nil {
		return "", fmt.Errorf("failed to create network %s: %w", name, err)
	}

	networkID := cloudapi.String(resp, "VpcId")
	if networkID == "" {
		return "", errors.New("create network response carries no VpcId")
	}
	c.logger.V(1).Info("network created, waiting for it to become available", "networkID", networkID)

	if err := c.waitForNetwork(ctx, region, networkID); err != nil {
		return "", err
	}
	return networkID, nil
}

// EnsureNetwork returns the first network named name, creating it when the
// region has none.
func (c *Client) EnsureNetwork(ctx context.Context, region, name string) (string, error) {
	return (&EnsureOperation[Network]{
		Name:         name,
		ResourceType: "network",
		Find: func(ctx context.Context) ([]Network, error) {
			return c.FindNetworks(ctx, region, NetworkFilter{Name: name})
		},
		ID: func(n Network) string { return n.ID },
		Create: func(ctx context.Context) (string, error) {
			return c.CreateNetwork(ctx, region, name)
		},
	}).Execute(ctx, c.logger)
}

func (c *Client) waitForNetwork(ctx context.Context, region, networkID string) error {
	_, err := retry.PollUntil(ctx, "network "+networkID,
		retry.PollConfig{Interval: c.timeouts.NetworkPollInterval, MaxAttempts: c.timeouts.NetworkPollAttempts},
		func(ctx context.Context) (string, error) {
			networks, err := c.FindNetworks(ctx, region, NetworkFilter{ID: networkID})
			if err != nil || len(networks) == 0 {
				return "", err
			}
			return networks[0].Status, nil
		},
		func(status string) bool { return status == StatusAvailable },
		func(status string) string { return status },
	)
	return err
}
