package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/srmkit/internal/provisioning"
)

func TestRenderNetworkConfig(t *testing.T) {
	t.Parallel()
	out := renderNetworkConfig("app", "cn-hangzhou", &provisioning.NetworkConfig{
		NetworkID:       "vpc-1",
		SubnetIDs:       []string{"vsw-1"},
		SecurityGroupID: "sg-1",
	}, 7)

	assert.Contains(t, out, "srmkit network: app (cn-hangzhou)")
	assert.Contains(t, out, "vpc-1")
	assert.Contains(t, out, "vsw-1")
	assert.Contains(t, out, "sg-1")
	assert.NotContains(t, out, "Storage subnet")
	assert.Contains(t, out, "7 cloud API requests")
}

func TestRenderStorageConfig(t *testing.T) {
	t.Parallel()
	out := renderStorageConfig("app", "cn-hangzhou", &provisioning.StorageConfig{
		Network: &provisioning.NetworkConfig{
			NetworkID:       "vpc-1",
			SubnetIDs:       []string{"vsw-1"},
			StorageSubnetID: "vsw-2",
			StorageZoneID:   "cn-hangzhou-h",
		},
		ShareID:     "fs-1",
		MountDomain: "fs-1.cn-hangzhou.nas.aliyuncs.com",
		Action:      provisioning.ShareAttached,
	}, 0)

	assert.Contains(t, out, "srmkit storage: app (cn-hangzhou)")
	assert.Contains(t, out, "fs-1.cn-hangzhou.nas.aliyuncs.com")
	assert.Contains(t, out, "attached")
	assert.Contains(t, out, "vsw-2 (cn-hangzhou-h)")
	assert.Contains(t, out, "Security group")
}
