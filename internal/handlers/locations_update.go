package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

// LocationUpdater defines the interface that the location update service must implement.
type LocationUpdater interface {
	Update(ctx context.Context, locationID, ownerID uuid.UUID, update models.LocationUpdate) (*models.LocationDB, error)
}

// LocationUpdateRequest represents the JSON body for a partial location update.
// Absent fields are left untouched.
// swagger:model LocationUpdateRequest
type LocationUpdateRequest struct {
	// Display name
	Name *string `json:"name"`

	// Description
	Description *string `json:"description"`

	// Latitude in [-90, 90]
	Latitude *float64 `json:"latitude"`

	// Longitude in [-180, 180]
	Longitude *float64 `json:"longitude"`

	// Category reference
	CategoryID *uuid.UUID `json:"category_id"`
}

// NewLocationsUpdateHandler returns an HTTP handler applying a partial update.
// @Summary Update a location
// @Description Applies the provided fields to one of the authenticated user's locations
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param locationUpdateRequest body handlers.LocationUpdateRequest true "Fields to update"
// @Success 200 {object} models.Location "Updated location"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid input"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.LocationsErrorResponse "Location or category not found"
// @Router /locations/{id} [put]
// @Security BearerAuth
func NewLocationsUpdateHandler(svc LocationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		locationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "invalid location id",
			})
			return
		}

		var req LocationUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Latitude != nil && !validLatitude(*req.Latitude) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "latitude must be in [-90, 90]",
			})
			return
		}
		if req.Longitude != nil && !validLongitude(*req.Longitude) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "longitude must be in [-180, 180]",
			})
			return
		}

		location, err := svc.Update(r.Context(), locationID, user.UserID, models.LocationUpdate{
			Name:        req.Name,
			Description: req.Description,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Location not found",
				})
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Category not found",
				})
			default:
				logger.Log.Errorw("failed to update location", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewLocation(location))
	}
}
