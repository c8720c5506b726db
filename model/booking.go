package model

type Quote struct {
	TierIndex       int    `json:"tier_index"`
	TierName        string `json:"tier_name"`
	UnitPrice       int    `json:"unit_price"`
	OriginalPrice   int    `json:"original_price,omitempty"`
	GroupSize       int    `json:"group_size"`
	TotalAmount     int    `json:"total_amount"`
	AdvanceAmount   int    `json:"advance_amount"`
	RemainingAmount int    `json:"remaining_amount"`
	DiscountPercent int    `json:"discount_percent"`
}

type CreateBookingRequest struct {
	PackageId  string `json:"package_id" validate:"required,max=32"`
	TierIndex  int    `json:"tier_index" validate:"gte=0"`
	GroupSize  int    `json:"group_size" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,e164"`
	TravelDate string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Gateway    string `json:"gateway" validate:"required,oneof=razorpay dodopayments"`
}

type CreateBookingResponse struct {
	Id               int32  `json:"id"`
	ExternalId       string `json:"external_id"`
	PaymentReference string `json:"payment_reference"`
	Gateway          string `json:"gateway"`
	Quote            Quote  `json:"quote"`
}

type CreateBookingEventMessage struct {
	ID               int32  `json:"id"`
	PackageID        string `json:"package_id"`
	ExternalID       string `json:"external_id"`
	TierName         string `json:"tier_name"`
	GroupSize        int32  `json:"group_size"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TravelDate       string `json:"travel_date"`
	TotalAmount      int64  `json:"total_amount"`
	AdvanceAmount    int64  `json:"advance_amount"`
	Gateway          string `json:"gateway"`
	PaymentReference string `json:"payment_reference"`
	ExpiredAt        string `json:"expired_at"`
}

type PaymentCallbackRequest struct {
	ExternalId string `json:"external_id" validate:"required"`
	Gateway    string `json:"gateway" validate:"omitempty,oneof=razorpay dodopayments"`
	PaymentId  string `json:"payment_id"`
}
