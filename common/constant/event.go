package constant

const (
	QueueStreamName = "kerala_tours_queue_stream"
)

const (
	AllWildcard     = "events.>"
	BookingWildcard = "events.booking.>"
	EmailWildcard   = "events.email.>"

	SubjectCreateBooking   = "events.booking.create"
	SubjectCallbackPayment = "events.booking.complete"
	SubjectSendEmail       = "events.email.send"
)
