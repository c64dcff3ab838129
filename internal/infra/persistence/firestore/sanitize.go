package firestore

// sanitizeDoc strips nil-valued fields from a document before it is
// written, recursing into nested maps and slices. The store rejects
// writes carrying undefined values, so this is load-bearing for every
// create and update path, not cosmetic.
func sanitizeDoc(fields map[string]any) map[string]any {
	clean := make(map[string]any, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		clean[key] = sanitizeValue(value)
	}

	return clean
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return sanitizeDoc(v)
	case []any:
		clean := make([]any, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			clean = append(clean, sanitizeValue(item))
		}

		return clean
	default:
		return value
	}
}
