package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category name already exists")
)

// CategoryReader defines read-only operations for categories.
type CategoryReader interface {
	List(ctx context.Context, offset, limit int) ([]models.CategoryDB, error)
	GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
	GetByName(ctx context.Context, name string) (*models.CategoryDB, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	Save(ctx context.Context, name string, description *string) (*models.CategoryDB, error)
}

// CategoryCache caches category lookups by id.
type CategoryCache interface {
	Get(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
	Set(ctx context.Context, category *models.CategoryDB) error
}

// CategoryService handles global category operations.
type CategoryService struct {
	reader CategoryReader
	writer CategoryWriter
	cache  CategoryCache
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader CategoryReader, writer CategoryWriter, cache CategoryCache) *CategoryService {
	return &CategoryService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns a page of categories.
func (svc *CategoryService) List(ctx context.Context, skip, limit int) ([]models.CategoryDB, error) {
	categories, err := svc.reader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}
	return categories, nil
}

// Get returns the category by id, consulting the cache first and
// back-filling it on a database hit.
func (svc *CategoryService) Get(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, categoryID)
		if err != nil {
			logger.Log.Errorw("category cache read failed", "category_id", categoryID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	category, err := svc.reader.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, category); err != nil {
			logger.Log.Errorw("category cache write failed", "category_id", categoryID, "err", err)
		}
	}

	return category, nil
}

// Create stores a new category with a unique name.
func (svc *CategoryService) Create(ctx context.Context, name string, description *string) (*models.CategoryDB, error) {
	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check category name", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	category, err := svc.writer.Save(ctx, name, description)
	if err != nil {
		logger.Log.Errorw("failed to save category", "err", err)
		return nil, err
	}
	return category, nil
}
