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

// CategoryGetter defines the interface that the category lookup service must implement.
type CategoryGetter interface {
	Get(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
}

// NewCategoriesGetHandler returns an HTTP handler fetching one category.
// @Summary Get a category
// @Description Returns a category by id
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category "Category"
// @Failure 400 {object} handlers.CategoriesErrorResponse "Invalid id"
// @Failure 401 {object} handlers.CategoriesErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CategoriesErrorResponse "Category not found"
// @Router /categories/{id} [get]
// @Security BearerAuth
func NewCategoriesGetHandler(svc CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoriesErrorResponse{
				Error: "invalid category id",
			})
			return
		}

		category, err := svc.Get(r.Context(), categoryID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CategoriesErrorResponse{
					Error: "Category not found",
				})
			default:
				logger.Log.Errorw("failed to get category", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CategoriesErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewCategory(category))
	}
}
