package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/httputils"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/repository"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/create-order", h.createOrder).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/payment-success", h.paymentSuccess).Methods("POST", "OPTIONS")
}

// @Summary Create order
// @Description Ask the payment provider for a premium order. The returned
// @Description object is the provider's and goes to the checkout UI as-is.
// @ID create-order
// @Produce json
// @Success 200 {object} payment.Order
// @Failure 502 {object} response.ErrorResponse
// @Router /api/create-order [post]
func (h *PaymentHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.paymentService.CreateOrder()
	if err != nil {
		log.Error().Err(err).Msg("payment: create order")
		httputils.ResponseError(w, http.StatusBadGateway, "Failed to create order")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, order)
}

type PaymentSuccessRequest struct {
	Username string `json:"username"`
}

type PaymentSuccessResponse struct {
	Success bool `json:"success"`
}

// @Summary Confirm payment
// @Description Mark the user premium after the checkout success callback.
// @ID payment-success
// @Accept json
// @Produce json
// @Success 200 {object} PaymentSuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Param successData body PaymentSuccessRequest true "Paying user"
// @Router /api/payment-success [post]
func (h *PaymentHandler) paymentSuccess(w http.ResponseWriter, r *http.Request) {
	var request PaymentSuccessRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	r.Body.Close()

	if request.Username == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "Username is required")
		return
	}

	if err := h.paymentService.ConfirmSuccess(request.Username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			httputils.ResponseError(w, http.StatusNotFound, "No such user")
			return
		}
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to confirm payment")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, PaymentSuccessResponse{Success: true})
}
