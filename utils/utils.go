package utils

// Map 逐元素转换
func Map[S, T any](src []S, f func(S) T) []T {
	res := make([]T, len(src))
	for i, v := range src {
		res[i] = f(v)
	}
	return res
}
