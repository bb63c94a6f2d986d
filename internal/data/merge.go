package data

// mergeLayers merges a locale overlay (src) into the base tree (dest).
// Scalars in the overlay replace base values, lists extend them, and
// nested maps merge recursively. On a shape mismatch the overlay wins.
func mergeLayers(src, dest map[string]interface{}) error {
	mergeTree(src, dest)
	return nil
}

func mergeTree(src, dest map[string]interface{}) {
	for key, sv := range src {
		dv, exists := dest[key]
		if !exists {
			dest[key] = sv
			continue
		}
		switch s := sv.(type) {
		case map[string]interface{}:
			if d, ok := dv.(map[string]interface{}); ok {
				mergeTree(s, d)
				continue
			}
			dest[key] = sv
		case []interface{}:
			if d, ok := dv.([]interface{}); ok {
				dest[key] = append(d, s...)
				continue
			}
			dest[key] = sv
		default:
			dest[key] = sv
		}
	}
}
