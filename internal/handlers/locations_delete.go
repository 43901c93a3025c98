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

// LocationDeleter defines the interface that the location deletion service must implement.
type LocationDeleter interface {
	Delete(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error)
}

// NewLocationsDeleteHandler returns an HTTP handler deleting a location.
// The deleted record is returned in the response body.
// @Summary Delete a location
// @Description Deletes one of the authenticated user's locations and returns the deleted record
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location "Deleted location"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid id"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.LocationsErrorResponse "Location not found"
// @Router /locations/{id} [delete]
// @Security BearerAuth
func NewLocationsDeleteHandler(svc LocationDeleter) http.HandlerFunc {
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

		location, err := svc.Delete(r.Context(), locationID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Location not found",
				})
			default:
				logger.Log.Errorw("failed to delete location", "err", err)
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
