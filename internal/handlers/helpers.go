package handlers

import (
	"net/http"
	"strconv"

	"github.com/mapmyworld/mapmyworld-api/internal/middlewares"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// currentUser returns the authenticated user placed in the context by the
// auth middleware, writing 401 and returning nil when it is missing.
func currentUser(w http.ResponseWriter, r *http.Request) *models.UserDB {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
	}
	return user
}

// parsePagination reads skip/limit query parameters with the service
// defaults of 0 and 100. Negative or malformed values are rejected.
func parsePagination(r *http.Request) (skip, limit int, ok bool) {
	skip, limit = 0, 100

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}

func validLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

func validLongitude(v float64) bool {
	return v >= -180 && v <= 180
}
