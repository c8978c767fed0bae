// Package mapper converts slices of domain entities into response shapes.
package mapper

// MapSlicePtr applies mapFunc to every non-nil element. The result is never
// nil, so an empty input encodes as [] rather than null.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}
