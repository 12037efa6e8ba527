package nas

import (
	"context"
	"fmt"

	"github.com/imamik/srmkit/internal/platform/cloudapi"
)

// DescribeZones returns the storage capabilities of every zone of a region
// for standard shares, in provider order.
func (c *Client) DescribeZones(ctx context.Context, region string) ([]Zone, error) {
	resp, err := c.api.Request(ctx, "DescribeZones", cloudapi.Params{
		"RegionId":       region,
		"FileSystemType": FileSystemTypeStandard,
	}, cloudapi.PostOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to describe storage zones: %w", err)
	}
	return cloudapi.DecodeList[Zone](resp, "Zones", "Zone")
}
