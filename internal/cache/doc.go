// Package cache provides a small bounded cache for values that are cheap to
// recompute but requested every frame, such as formatted label strings.
//
//	labels := cache.New[float64, string](1024)
//	s := labels.GetOrCreate(12.5, func() string { return format(12.5) })
//
// When the cache grows past its soft limit the least recently used quarter
// of the entries is evicted.
package cache
