package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

// LocationCreator defines the interface that the location creation service must implement.
type LocationCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, create models.LocationCreate) (*models.LocationDB, error)
}

// LocationCreateRequest represents the JSON body for creating a location
// swagger:model LocationCreateRequest
type LocationCreateRequest struct {
	// Display name
	// required: true
	// default: Coffee shop
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`

	// Latitude in [-90, 90]
	// required: true
	Latitude *float64 `json:"latitude"`

	// Longitude in [-180, 180]
	// required: true
	Longitude *float64 `json:"longitude"`

	// Optional category reference
	CategoryID *uuid.UUID `json:"category_id"`
}

// NewLocationsCreateHandler returns an HTTP handler creating a location.
// @Summary Create a location
// @Description Creates a new location owned by the authenticated user. A category reference, if given, must exist.
// @Tags locations
// @Accept json
// @Produce json
// @Param locationCreateRequest body handlers.LocationCreateRequest true "Location to create"
// @Success 201 {object} models.Location "Created location"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid input"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.LocationsErrorResponse "Category not found"
// @Router /locations/ [post]
// @Security BearerAuth
func NewLocationsCreateHandler(svc LocationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		var req LocationCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Name == "" || req.Latitude == nil || req.Longitude == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "name, latitude and longitude are required",
			})
			return
		}
		if !validLatitude(*req.Latitude) || !validLongitude(*req.Longitude) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "latitude must be in [-90, 90] and longitude in [-180, 180]",
			})
			return
		}

		location, err := svc.Create(r.Context(), user.UserID, models.LocationCreate{
			Name:        req.Name,
			Description: req.Description,
			Latitude:    *req.Latitude,
			Longitude:   *req.Longitude,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Category not found",
				})
			default:
				logger.Log.Errorw("failed to create location", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.NewLocation(location))
	}
}
