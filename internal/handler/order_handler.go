package handler

import (
	"encoding/json"
	"net/http"

	"quick-bite/internal/middleware"
	"quick-bite/internal/model"
	"quick-bite/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout, payment callback, and fulfillment requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// sessionResponse carries the payment redirect URL.
type sessionResponse struct {
	Success    bool   `json:"success"`
	SessionURL string `json:"session_url"`
}

// Place handles POST /api/order/place requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	sessionURL, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, sessionResponse{Success: true, SessionURL: sessionURL})
}

// Verify handles POST /api/order/verify requests, the payment gateway
// callback. A failed payment answers {success:false, "Not Paid"} even though
// the rollback itself succeeded; clients key off the message.
func (h *OrderHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	paid, err := h.service.VerifyOrder(r.Context(), &req, r.Header.Get("Stripe-Signature"))
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	if paid {
		writeJSON(w, messageResponse{Success: true, Message: "Paid"})
		return
	}
	writeJSON(w, messageResponse{Success: false, Message: "Not Paid"})
}

// UserOrders handles POST /api/order/userorders requests.
func (h *OrderHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	orders, err := h.service.UserOrders(r.Context(), userID)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, dataResponse{Success: true, Data: orders})
}

// List handles POST /api/order/list requests (admin only).
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userID)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, dataResponse{Success: true, Data: orders})
}

// UpdateStatus handles POST /api/order/status requests (admin only).
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), userID, &req); err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, messageResponse{Success: true, Message: "Status Updated Successfully"})
}
