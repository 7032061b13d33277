package datemath

import "time"

// LongDateLayout renders e.g. "Monday, March 03, 2025".
const LongDateLayout = "Monday, January 02, 2006"

// LongDate formats t with LongDateLayout.
func LongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}
