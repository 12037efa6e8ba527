package vpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// FindSecurityGroups lists the security groups of a network with the given name.
func (c *Client) FindSecurityGroups(ctx context.Context, region, networkID, name string) ([]SecurityGroup, error) {
	resp, err := c.sgAPI.Request(ctx, "DescribeSecurityGroups", cloudapi.Params{
		"RegionId":          region,
		"VpcId":             networkID,
		"SecurityGroupName": name,
	}, cloudapi.PostOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe security groups: %w", err)
	}
	return cloudapi.DecodeList[SecurityGroup](resp, "SecurityGroups", "SecurityGroup")
}

// CreateSecurityGroup creates a normal security group in a network. The name
// doubles as the description.
func (c *Client) CreateSecurityGroup(ctx context.Context, region, networkID, name string) (string, error) {
	resp, err := c.sgAPI.Request(ctx, "CreateSecurityGroup", cloudapi.Params{
		"RegionId":          region,
		"VpcId":             networkID,
		"SecurityGroupName": name,
		"Description":       name,
		"SecurityGroupType": "normal",
		"ClientToken":       uuid.NewString(),
	}, cloudapi.PostOptions)
	if err != nil {
		return "", err
	}

	id := cloudapi.String(resp, "SecurityGroupId")
	if id == "" {
		return "", errors.New("create security group response carries no SecurityGroupId")
	}
	return id, nil
}

// EnsureSecurityGroup returns the security group named name in a network,
// creating it only when absent.
func (c *Client) EnsureSecurityGroup(ctx context.Context, region, networkID, name string) (string, error) {
	return (&EnsureOperation[SecurityGroup]{
		Name:         name,
		ResourceType: "security group",
		Find: func(ctx context.Context) ([]SecurityGroup, error) {
			return c.FindSecurityGroups(ctx, region, networkID, name)
		},
		ID: func(sg SecurityGroup) string { return sg.ID },
		Create: func(ctx context.Context) (string, error) {
			return c.CreateSecurityGroup(ctx, region, networkID, name)
		},
	}).Execute(ctx, c.logger)
}
