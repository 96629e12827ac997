package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"quick-bite/internal/middleware"
	"quick-bite/internal/model"
	"quick-bite/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxUploadSize caps catalogue image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// FoodHandler handles catalogue management requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new catalogue handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// Add handles POST /api/food/add requests (multipart form with an image).
func (h *FoodHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		fail(w, h.logger, err)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		fail(w, h.logger, err)
		return
	}
	defer file.Close()

	req := &service.AddFoodRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Image:       file,
		ImageName:   header.Filename,
	}

	if _, err := h.service.Add(r.Context(), userID, req); err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, messageResponse{Success: true, Message: "Food Added"})
}

// List handles GET /api/food/list requests.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.List(r.Context())
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	if foods == nil {
		foods = []model.FoodItem{}
	}
	writeJSON(w, dataResponse{Success: true, Data: foods})
}

// Remove handles POST /api/food/remove requests.
func (h *FoodHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		fail(w, h.logger, model.ErrNotAuthorized)
		return
	}

	var req model.RemoveFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, h.logger, err)
		return
	}

	foodID, err := uuid.Parse(req.ID)
	if err != nil {
		fail(w, h.logger, err)
		return
	}

	if err := h.service.Remove(r.Context(), userID, foodID); err != nil {
		fail(w, h.logger, err)
		return
	}

	writeJSON(w, messageResponse{Success: true, Message: "Food Removed"})
}
