package normalizer

import "time"

type systemClock struct{}

// Now returns current UTC time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}
