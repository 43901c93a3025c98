package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

// CategoryCreator defines the interface that the category creation service must implement.
type CategoryCreator interface {
	Create(ctx context.Context, name string, description *string) (*models.CategoryDB, error)
}

// CategoryCreateRequest represents the JSON body for creating a category
// swagger:model CategoryCreateRequest
type CategoryCreateRequest struct {
	// Unique name
	// required: true
	// default: Restaurants
	Name string `json:"name"`

	// Optional description
	Description *string `json:"description"`
}

// NewCategoriesCreateHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Description Creates a new global category with a unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryCreateRequest body handlers.CategoryCreateRequest true "Category to create"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} handlers.CategoriesErrorResponse "Invalid input"
// @Failure 401 {object} handlers.CategoriesErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.CategoriesErrorResponse "Category name already exists"
// @Router /categories/ [post]
// @Security BearerAuth
func NewCategoriesCreateHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(w, r)
		if user == nil {
			return
		}

		var req CategoryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoriesErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoriesErrorResponse{
				Error: "name is required",
			})
			return
		}

		category, err := svc.Create(r.Context(), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CategoriesErrorResponse{
					Error: "Category name already exists",
				})
			default:
				logger.Log.Errorw("failed to create category", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CategoriesErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.NewCategory(category))
	}
}
