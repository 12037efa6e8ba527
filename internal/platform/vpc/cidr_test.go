package vpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSubnetCIDR(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cidr    string
		want    string
		wantErr error
	}{
		{name: "default block", cidr: DefaultSubnetCIDR, want: "10.20.16.0/24"},
		{name: "keeps prefix length", cidr: "172.16.32.0/25", want: "172.16.48.0/25"},
		{name: "last candidate", cidr: "10.20.224.0/24", want: "10.20.240.0/24"},
		{name: "octet exhausted", cidr: "10.20.240.0/24", wantErr: ErrCIDRExhausted},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NextSubnetCIDR(tt.cidr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextSubnetCIDR_Invalid(t *testing.T) {
	t.Parallel()
	_, err := NextSubnetCIDR("not-a-cidr")
	assert.Error(t, err)

	_, err = NextSubnetCIDR("fd00::/64")
	assert.ErrorContains(t, err, "only IPv4")
}

func TestSubnetCIDRFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		network string
		want    string
	}{
		{"10.0.0.0/8", "10.0.0.0/24"},
		{"192.168.0.0/16", "192.168.0.0/24"},
		{"172.16.5.0/24", "172.16.5.0/25"},
		{"10.1.2.0/27", "10.1.2.0/28"},
		{"10.1.2.0/28", "10.1.2.0/29"},
		{"10.1.2.0/29", "10.1.2.0/29"},
		{"10.1.2.3/16", "10.1.0.0/24"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.network, func(t *testing.T) {
			t.Parallel()
			got, err := SubnetCIDRFor(tt.network)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
