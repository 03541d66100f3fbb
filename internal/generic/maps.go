package generic

// MapMerge returns a new map with the contents of all given maps. Values from
// later maps overwrite values from earlier ones. The source maps are not modified.
func MapMerge[K comparable, V any](maps ...map[K]V) map[K]V {
	var size int
	for _, m := range maps {
		size += len(m)
	}

	res := make(map[K]V, size)

	for _, m := range maps {
		for k, v := range m {
			res[k] = v
		}
	}

	return res
}
