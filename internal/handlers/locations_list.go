package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// LocationLister defines the interface that the location listing service must implement.
type LocationLister interface {
	List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.LocationDB, error)
}

// LocationsErrorResponse represents an error response for location endpoints
// swagger:model LocationsErrorResponse
type LocationsErrorResponse struct {
	// Error message
	// default: Location not found
	Error string `json:"error"`
}

// NewLocationsListHandler returns an HTTP handler listing the caller's locations.
// @Summary List my locations
// @Description Returns a paginated list of locations owned by the authenticated user
// @Tags locations
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items to return" default(100)
// @Success 200 {array} models.Location "Locations"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Router /locations/ [get]
// @Security BearerAuth
func NewLocationsListHandler(svc LocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		skip, limit, ok := parsePagination(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "skip and limit must be non-negative integers",
			})
			return
		}

		locations, err := svc.List(r.Context(), user.UserID, skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list locations", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]models.Location, 0, len(locations))
		for i := range locations {
			resp = append(resp, models.NewLocation(&locations[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
