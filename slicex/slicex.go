package slicex

func Count[T any](s []T, f func(t T) bool) int {
	cnt := 0
	for _, v := range s {
		if f(v) {
			cnt += 1
		}
	}
	return cnt
}

func Map[S any, D any](ss []S, f func(S, int) D) []D {
	ret := make([]D, 0, len(ss))
	for k, v := range ss {
		ret = append(ret, f(v, k))
	}
	return ret
}

// Filter returns the elements of s for which keep is true, in order.
func Filter[T any](s []T, keep func(t T) bool) []T {
	ret := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// Unique drops repeated elements, keeping the first occurrence of each.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	ret := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ret = append(ret, v)
	}
	return ret
}
