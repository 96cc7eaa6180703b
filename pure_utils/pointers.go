package pure_utils

func Ptr[T any](value T) *T {
	return &value
}

func PtrValueOrDefault[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}
