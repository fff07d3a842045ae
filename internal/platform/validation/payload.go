package validation

// Payload accessors used by services to pull typed values out of the raw
// request map after it has passed validation.

// Str returns the string at key, and whether it was present and a string.
func Str(p map[string]interface{}, key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int64 returns the integer at key, and whether it was present and integral.
func Int64(p map[string]interface{}, key string) (int64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	return asInt64(v)
}

// Float64 returns the number at key, and whether it was present and numeric.
func Float64(p map[string]interface{}, key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	return asFloat64(v)
}

// Has reports whether the key was submitted at all, including explicit null.
func Has(p map[string]interface{}, key string) bool {
	_, ok := p[key]
	return ok
}

// IsNull reports whether the key was submitted as an explicit JSON null.
func IsNull(p map[string]interface{}, key string) bool {
	v, ok := p[key]
	return ok && v == nil
}
