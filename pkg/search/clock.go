package search

import "time"

// Clock is a monotonic time source. Search polls it once per recursion node
// to enforce a time budget; injecting it lets tests drive deterministic time
// without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
