package cloudapi

import "context"

// Page is one page of a paginated Describe* call.
type Page[T any] struct {
	Items      []T
	TotalCount int
	// PageNumber echoed by the provider. Zero means "not reported" and the
	// requested page number is used instead.
	PageNumber int
}

// Paginate fetches pages starting at 1 until pageNumber*pageSize reaches the
// reported total. A total of zero short-circuits to an empty result, and an
// empty page stops the loop so a provider that over-reports the total cannot
// spin it forever.
func Paginate[T any](ctx context.Context, pageSize int, fetch func(ctx context.Context, pageNumber int) (*Page[T], error)) ([]T, int, error) {
	items := []T{}
	for requested := 1; ; requested++ {
		page, err := fetch(ctx, requested)
		if err != nil {
			return nil, 0, err
		}
		if page.TotalCount == 0 {
			return []T{}, 0, nil
		}
		items = append(items, page.Items...)

		current := page.PageNumber
		if current == 0 {
			current = requested
		}
		if len(page.Items) == 0 || current*pageSize >= page.TotalCount {
			return items, page.TotalCount, nil
		}
	}
}
