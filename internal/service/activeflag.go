package service

// NormalizeActiveFlag maps the polymorphic active-status representations
// seen on the wire to a single boolean. Booleans pass through, integers
// treat 1 as active and 0 as inactive, and an absent value (nil) is
// inactive. Note the asymmetry with write time, where entities are created
// active by default: a missing flag on a read path renders as inactive.
// That behavior is intentional and relied on by status badges downstream.
func NormalizeActiveFlag(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val == 1
	case int64:
		return val == 1
	case uint:
		return val == 1
	case float64:
		// JSON numbers decode as float64
		return val == 1
	default:
		return false
	}
}

// ActiveStatusLabel renders the normalized flag as the display label used by
// read endpoints.
func ActiveStatusLabel(v interface{}) string {
	if NormalizeActiveFlag(v) {
		return "active"
	}
	return "inactive"
}
