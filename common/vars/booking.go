package vars

import (
	"maps"
	"sync/atomic"
)

// bookingCounts holds the latest snapshot of paid bookings per package id.
// Readers never lock; the cron swaps in a whole new map on each refresh.
var bookingCounts atomic.Pointer[map[string]int64]

// GetBookingCounts returns the current snapshot, nil before the first refresh.
// The returned map must not be modified.
func GetBookingCounts() map[string]int64 {
	ptr := bookingCounts.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

func GetBookingCount(packageId string) int64 {
	return GetBookingCounts()[packageId]
}

// SetBookingCounts stores a copy of counts. Pass nil or an empty map to clear.
func SetBookingCounts(counts map[string]int64) {
	if len(counts) == 0 {
		bookingCounts.Store(nil)
		return
	}

	snapshot := maps.Clone(counts)
	bookingCounts.Store(&snapshot)
}
