package cloudapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testVpc struct {
	ID     string `json:"VpcId"`
	Status string `json:"Status"`
	Count  int    `json:"Count"`
}

func TestDecodeList_NestedEnvelope(t *testing.T) {
	t.Parallel()
	resp := Response{
		"TotalCount": float64(2),
		"Vpcs": map[string]any{
			"Vpc": []any{
				map[string]any{"VpcId": "vpc-1", "Status": "Available", "Count": float64(3)},
				map[string]any{"VpcId": "vpc-2", "Status": "Pending"},
			},
		},
	}

	vpcs, err := DecodeList[testVpc](resp, "Vpcs", "Vpc")
	require.NoError(t, err)
	require.Len(t, vpcs, 2)
	assert.Equal(t, "vpc-1", vpcs[0].ID)
	assert.Equal(t, 3, vpcs[0].Count)
	assert.Equal(t, "Pending", vpcs[1].Status)
}

func TestDecodeList_Defensive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp Response
		want int
	}{
		{name: "missing envelope", resp: Response{"TotalCount": 0}, want: 0},
		{name: "null inner list", resp: Response{"Vpcs": map[string]any{"Vpc": nil}}, want: 0},
		{name: "envelope is not an object", resp: Response{"Vpcs": "unexpected"}, want: 0},
		{name: "single object instead of list", resp: Response{"Vpcs": map[string]any{"Vpc": map[string]any{"VpcId": "vpc-1"}}}, want: 1},
		{name: "nested Response type", resp: Response{"Vpcs": Response{"Vpc": []any{Response{"VpcId": "vpc-1"}}}}, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeList[testVpc](tt.resp, "Vpcs", "Vpc")
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestScalars(t *testing.T) {
	t.Parallel()
	resp := Response{
		"TotalCount": float64(120),
		"PageNumber": 2,
		"Text":       "7",
		"VpcId":      "vpc-1",
		"Nested":     map[string]any{"Status": "Available"},
	}

	assert.Equal(t, 120, Int(resp, "TotalCount"))
	assert.Equal(t, 2, Int(resp, "PageNumber"))
	assert.Equal(t, 7, Int(resp, "Text"))
	assert.Equal(t, 0, Int(resp, "Missing"))
	assert.Equal(t, "vpc-1", String(resp, "VpcId"))
	assert.Equal(t, "Available", String(resp, "Nested", "Status"))
	assert.Equal(t, "", String(resp, "Nested", "Missing"))
}
