package constant

const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
)

const (
	GatewayRazorpay     = "razorpay"
	GatewayDodoPayments = "dodopayments"
)

// BookingIdPrefix is prepended to the numeric booking id in customer facing texts.
const BookingIdPrefix = "KTG-"
