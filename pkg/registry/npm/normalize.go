package npm

// NormalizePerson converts an author value from the registry document to
// its structured form. A bare name string becomes a Person with only the
// name set; an object already in structured form passes through unchanged.
// Returns nil for anything else (absent field, unexpected shape).
func NormalizePerson(v any) *Person {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
		return &Person{Name: val}
	case map[string]any:
		p := &Person{
			Name:  stringField(val, "name"),
			Email: stringField(val, "email"),
			URL:   stringField(val, "url"),
		}
		if *p == (Person{}) {
			return nil
		}
		return p
	}
	return nil
}

// NormalizeRepositoryRef reduces the declared repository reference to a
// plain string for comparison: strings pass through, objects contribute
// their url field, anything else yields the empty string.
func NormalizeRepositoryRef(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		return stringField(val, "url")
	}
	return ""
}

func normalizeMaintainers(entries []any) []Person {
	result := make([]Person, 0, len(entries))
	for _, e := range entries {
		if p := NormalizePerson(e); p != nil {
			result = append(result, *p)
		}
	}
	return result
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
