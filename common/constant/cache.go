package constant

import "time"

const (
	EachPackageBookingsKey = "package:%s:bookings"
	BookingLockKey         = "booking:lock:%s:%s"
)

const (
	BookingLockDefaultTTL = 1 * time.Minute
)
