package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/payment/usecase/command"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
	"github.com/tair/gog-commerce/pkg/response"
)

// PaymentHandler exposes gateway order creation and signature verification
type PaymentHandler struct {
	createOrderHandler *command.CreateOrderHandler
	verifyHandler      *command.VerifyPaymentHandler
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(
	createOrderHandler *command.CreateOrderHandler,
	verifyHandler *command.VerifyPaymentHandler,
) *PaymentHandler {
	return &PaymentHandler{
		createOrderHandler: createOrderHandler,
		verifyHandler:      verifyHandler,
	}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/payment/orders", h.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/payment/verify", h.Verify).Methods(http.MethodPost)
}

type createOrderRequest struct {
	Amount float64 `json:"amount"`
}

type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// CreateOrder godoc
// @Summary Create a payment gateway order
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "Amount in rupees"
// @Success 200 {object} object{data=object}
// @Failure 400 {object} object{message=string}
// @Failure 500 {object} object{message=string}
// @Router /api/payment/orders [post]
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.createOrderHandler.Handle(r.Context(), command.CreateOrderCommand{Amount: req.Amount})
	if err != nil {
		if apperror.IsInternal(err) {
			logger.Error(r.Context()).Err(err).Float64("amount", req.Amount).Msg("Failed to create payment order")
			response.Message(w, http.StatusInternalServerError, "Something Went Wrong!")
			return
		}
		response.Message(w, apperror.HTTPStatus(err), apperror.PublicMessage(err))
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"data": order})
}

// Verify godoc
// @Summary Verify a payment signature
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body verifyRequest true "Gateway callback fields"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{message=string}
// @Router /api/payment/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid signature sent!")
		return
	}

	err := h.verifyHandler.Handle(r.Context(), command.VerifyPaymentCommand{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		response.FailureMessage(r.Context(), w, err, "Something Went Wrong!")
		return
	}

	response.Message(w, http.StatusOK, "Payment verified successfully")
}
