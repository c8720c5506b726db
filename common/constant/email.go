package constant

const EmailBookingConfirmationTemplate = `
Dear %s,

Thank you for choosing us for your Kerala trip! Your booking request has been received.

Booking Details:
------------------------------------------
Booking ID: %s
Package: %s
Tier: %s
Travellers: %d
Travel Date: %s
Total Amount: %s
Advance Payable Now: %s
Payment Reference: %s
------------------------------------------

Please complete the advance payment before: %s

The remaining balance is due before the start of your trip. If the advance is not received
in time the booking request is released automatically.

If you have any questions, reply to this email or call +91 94470 00000.

Warm regards,
Kerala Tour Guide

Note: This is an automated message, please do not reply to this email.
`

const EmailBookingPaidTemplate = `
Dear %s,

We have received your advance payment. Your trip is confirmed!

BOOKING CONFIRMED

Booking Details:
------------------------------------------
Booking ID: %s
Package: %s
Tier: %s
Travellers: %d
Advance Paid: %s
Balance Due Before Travel: %s
------------------------------------------

Your guide will contact you a few days before travel with pickup details.

Important Information:
- Carry a valid photo ID for every traveller
- Light cotton clothing and rain gear are recommended
- Balance payment can be made in cash or by bank transfer

Warm regards,
Kerala Tour Guide
`

const EmailBookingCancellationTemplate = `
Dear %s,

Your booking request has been cancelled because the advance payment was not received in time.

Booking Details:
------------------------------------------
Booking ID: %s
Package: %s
Advance Amount: %s
------------------------------------------

You are welcome to book again at any time.

Warm regards,
Kerala Tour Guide

Note: This is an automated message, please do not reply to this email.
`
