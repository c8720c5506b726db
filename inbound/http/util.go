package http

import (
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"kerala-tours/common/constant"
	"kerala-tours/common/errs"
	"kerala-tours/model"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var paymentReferencePrefixByGateway = map[string]string{
	constant.GatewayRazorpay:     "rzp",
	constant.GatewayDodoPayments: "dodo",
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	var message string
	var data any
	if httpErr, ok := err.(*errs.HttpError); ok {
		message = httpErr.Message
		data = httpErr.Data
		w.WriteHeader(httpErr.Code)
	} else if validationErr, ok := err.(validator.ValidationErrors); ok {
		message = "Validation failed"
		w.WriteHeader(http.StatusBadRequest)

		validationErrors := make(map[string]string)
		for _, fieldErr := range validationErr {
			validationErrors[fieldErr.Field()] = fieldErr.Tag()
		}

		data = validationErrors
	} else {
		message = "Internal Server Error"
		w.WriteHeader(http.StatusInternalServerError)
	}

	errorResponse := model.ErrorResponse{Error: message, Data: data}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// generatePaymentReference builds the order reference handed to the checkout SDK,
// e.g. rzp_01JAB3... for razorpay.
func generatePaymentReference(gateway string) string {
	prefix, ok := paymentReferencePrefixByGateway[gateway]
	if !ok {
		prefix = "pay"
	}

	return fmt.Sprintf("%s_%s", prefix, ulid.Make().String())
}

// queryInt reads an optional integer query parameter. Missing or blank values yield def.
func queryInt(values url.Values, key, field string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(field, "number")
	}

	return n, nil
}

// queryList splits a comma separated query parameter, dropping blank entries.
func queryList(values url.Values, key string) []string {
	var list []string
	for _, raw := range values[key] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
	}

	return list
}
