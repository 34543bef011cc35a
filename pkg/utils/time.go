package utils

import "time"

// Clock abstracts time.Now so handlers stamping records can be tested
type Clock func() time.Time

// SystemClock returns the current UTC time
func SystemClock() time.Time {
	return time.Now().UTC()
}
