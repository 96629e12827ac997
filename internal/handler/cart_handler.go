package handler

import (
	"encoding/json"
	"net/http"

	"quick-bite/internal/middleware"
	"quick-bite/internal/model"
	"quick-bite/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart mutation requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse carries the cart snapshot.
type cartResponse struct {
	Success  bool       `json:"success"`
	CartData model.Cart `json:"cartData"`
}

// Add handles POST /api/cart/add requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	var req model.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	if err := h.service.AddItem(r.Context(), userID, req.ItemID); err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, messageResponse{Success: true, Message: "Added to Cart"})
}

// Remove handles POST /api/cart/remove requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	var req model.CartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, req.ItemID); err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, messageResponse{Success: true, Message: "Removed from Cart"})
}

// Get handles POST /api/cart/get requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, cartResponse{Success: true, CartData: cart})
}
