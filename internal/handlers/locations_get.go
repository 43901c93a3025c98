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

// LocationGetter defines the interface that the location lookup service must implement.
type LocationGetter interface {
	Get(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error)
}

// NewLocationsGetHandler returns an HTTP handler fetching one location.
// A location owned by another user is reported exactly like a missing one.
// @Summary Get a location
// @Description Returns one of the authenticated user's locations by id
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.Location "Location"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid id"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.LocationsErrorResponse "Location not found"
// @Router /locations/{id} [get]
// @Security BearerAuth
func NewLocationsGetHandler(svc LocationGetter) http.HandlerFunc {
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

		location, err := svc.Get(r.Context(), locationID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrLocationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LocationsErrorResponse{
					Error: "Location not found",
				})
			default:
				logger.Log.Errorw("failed to get location", "err", err)
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
