package cloudapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagesOf(total, pageSize int) func(context.Context, int) (*Page[int], error) {
	return func(_ context.Context, pageNumber int) (*Page[int], error) {
		var items []int
		for i := (pageNumber - 1) * pageSize; i < total && i < pageNumber*pageSize; i++ {
			items = append(items, i)
		}
		return &Page[int]{Items: items, TotalCount: total, PageNumber: pageNumber}, nil
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantPages int
	}{
		{name: "single partial page", total: 3, pageSize: 50, wantPages: 1},
		{name: "exact multiple", total: 100, pageSize: 50, wantPages: 2},
		{name: "three pages", total: 101, pageSize: 50, wantPages: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calls := 0
			fetch := pagesOf(tt.total, tt.pageSize)

			items, total, err := Paginate(context.Background(), tt.pageSize, func(ctx context.Context, n int) (*Page[int], error) {
				calls++
				return fetch(ctx, n)
			})

			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Len(t, items, tt.total)
			assert.Equal(t, tt.wantPages, calls)
		})
	}
}

func TestPaginate_ZeroTotalShortCircuits(t *testing.T) {
	t.Parallel()
	calls := 0
	items, total, err := Paginate(context.Background(), 50, func(context.Context, int) (*Page[string], error) {
		calls++
		return &Page[string]{TotalCount: 0}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
	assert.NotNil(t, items)
	assert.Equal(t, 1, calls)
}

func TestPaginate_StopsOnEmptyPage(t *testing.T) {
	t.Parallel()
	calls := 0
	items, _, err := Paginate(context.Background(), 10, func(_ context.Context, n int) (*Page[int], error) {
		calls++
		if n == 1 {
			return &Page[int]{Items: []int{1, 2}, TotalCount: 500}, nil
		}
		return &Page[int]{TotalCount: 500}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
	assert.Equal(t, 2, calls)
}

func TestPaginate_Error(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("boom")
	_, _, err := Paginate(context.Background(), 10, func(context.Context, int) (*Page[int], error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
