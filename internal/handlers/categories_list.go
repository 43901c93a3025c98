package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// CategoryLister defines the interface that the category listing service must implement.
type CategoryLister interface {
	List(ctx context.Context, skip, limit int) ([]models.CategoryDB, error)
}

// CategoriesErrorResponse represents an error response for category endpoints
// swagger:model CategoriesErrorResponse
type CategoriesErrorResponse struct {
	// Error message
	// default: Category not found
	Error string `json:"error"`
}

// NewCategoriesListHandler returns an HTTP handler listing categories.
// Categories are global; the route still requires an authenticated user.
// @Summary List categories
// @Description Returns a paginated list of all categories
// @Tags categories
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items to return" default(100)
// @Success 200 {array} models.Category "Categories"
// @Failure 400 {object} handlers.CategoriesErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.CategoriesErrorResponse "Unauthorized"
// @Router /categories/ [get]
// @Security BearerAuth
func NewCategoriesListHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		skip, limit, ok := parsePagination(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoriesErrorResponse{
				Error: "skip and limit must be non-negative integers",
			})
			return
		}

		categories, err := svc.List(r.Context(), skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CategoriesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]models.Category, 0, len(categories))
		for i := range categories {
			resp = append(resp, models.NewCategory(&categories[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
