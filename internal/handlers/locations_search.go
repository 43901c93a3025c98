package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// NearbySearcher defines the interface that the proximity search service must implement.
type NearbySearcher interface {
	SearchNearby(ctx context.Context, ownerID uuid.UUID, centerLat, centerLng, radiusKm float64) ([]models.LocationDB, error)
}

// NewLocationsSearchHandler returns an HTTP handler for nearby search.
// maxRadiusKm caps the accepted radius; zero disables the cap.
// @Summary Search nearby locations
// @Description Returns the authenticated user's locations within radius_km of the center point
// @Tags locations
// @Produce json
// @Param center_lat query number true "Center latitude in [-90, 90]"
// @Param center_lng query number true "Center longitude in [-180, 180]"
// @Param radius_km query number true "Search radius in kilometers, > 0"
// @Success 200 {array} models.Location "Locations within the radius"
// @Failure 400 {object} handlers.LocationsErrorResponse "Invalid search parameters"
// @Failure 401 {object} handlers.LocationsErrorResponse "Unauthorized"
// @Router /locations/search/nearby [get]
// @Security BearerAuth
func NewLocationsSearchHandler(svc NearbySearcher, maxRadiusKm float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		q := r.URL.Query()

		centerLat, err := strconv.ParseFloat(q.Get("center_lat"), 64)
		if err != nil || !validLatitude(centerLat) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "center_lat must be a number in [-90, 90]",
			})
			return
		}

		centerLng, err := strconv.ParseFloat(q.Get("center_lng"), 64)
		if err != nil || !validLongitude(centerLng) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "center_lng must be a number in [-180, 180]",
			})
			return
		}

		radiusKm, err := strconv.ParseFloat(q.Get("radius_km"), 64)
		if err != nil || radiusKm <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: "radius_km must be a positive number",
			})
			return
		}
		if maxRadiusKm > 0 && radiusKm > maxRadiusKm {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Error: fmt.Sprintf("radius_km must not exceed %g", maxRadiusKm),
			})
			return
		}

		locations, err := svc.SearchNearby(r.Context(), user.UserID, centerLat, centerLng, radiusKm)
		if err != nil {
			logger.Log.Errorw("nearby search failed", "err", err)
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
