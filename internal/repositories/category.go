package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

const categoryColumns = `category_id, name, description, created_at`

// CategoryReadRepository handles category lookups. Categories are global,
// not scoped to a user.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns a stable page of categories.
func (r *CategoryReadRepository) List(ctx context.Context, offset, limit int) ([]models.CategoryDB, error) {
	const query = `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY created_at, category_id
		LIMIT $1 OFFSET $2
	`

	categories := []models.CategoryDB{}
	err := r.db.SelectContext(ctx, &categories, query, limit, offset)

	logger.Log.Infow("category list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"count", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns the category with the given id, or nil if absent.
func (r *CategoryReadRepository) GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	const query = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE category_id = $1
	`
	return r.get(ctx, query, categoryID)
}

// GetByName returns the category with the given name, or nil if absent.
func (r *CategoryReadRepository) GetByName(ctx context.Context, name string) (*models.CategoryDB, error) {
	const query = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE name = $1
	`
	return r.get(ctx, query, name)
}

func (r *CategoryReadRepository) get(ctx context.Context, query string, arg any) (*models.CategoryDB, error) {
	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, arg)

	logger.Log.Infow("category query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryWriteRepository handles category write operations.
type CategoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCategoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new category and returns the created record. Name uniqueness
// is checked by the caller and enforced again by the database constraint.
func (r *CategoryWriteRepository) Save(ctx context.Context, name string, description *string) (*models.CategoryDB, error) {
	query := `
		INSERT INTO categories (category_id, name, description, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + categoryColumns + `
	`
	args := []any{uuid.New(), name, description}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor, &category, query, args...)

	logger.Log.Infow("category insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &category, nil
}
