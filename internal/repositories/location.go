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

const locationColumns = `location_id, name, description, latitude, longitude, category_id, owner_id, created_at, updated_at`

// LocationReadRepository handles location lookups. Every query is scoped by
// owner so that a foreign id and a missing id are indistinguishable.
type LocationReadRepository struct {
	db *sqlx.DB
}

func NewLocationReadRepository(db *sqlx.DB) *LocationReadRepository {
	return &LocationReadRepository{db: db}
}

// ListByOwner returns a stable page of the owner's locations.
func (r *LocationReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]models.LocationDB, error) {
	const query = `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE owner_id = $1
		ORDER BY created_at, location_id
		LIMIT $2 OFFSET $3
	`

	locations := []models.LocationDB{}
	err := r.db.SelectContext(ctx, &locations, query, ownerID, limit, offset)

	logger.Log.Infow("location list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, limit, offset},
		"count", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return locations, nil
}

// ListAllByOwner returns every location of the owner, for the proximity scan.
func (r *LocationReadRepository) ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error) {
	const query = `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE owner_id = $1
		ORDER BY created_at, location_id
	`

	locations := []models.LocationDB{}
	err := r.db.SelectContext(ctx, &locations, query, ownerID)

	logger.Log.Infow("location list all",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return locations, nil
}

// GetByID returns the location with the given id if it belongs to the owner,
// nil otherwise. The lookup is a single query filtered by both id and owner.
func (r *LocationReadRepository) GetByID(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error) {
	const query = `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE location_id = $1 AND owner_id = $2
	`

	var location models.LocationDB
	err := r.db.GetContext(ctx, &location, query, locationID, ownerID)

	logger.Log.Infow("location get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{locationID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// LocationWriteRepository handles location write operations.
type LocationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLocationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LocationWriteRepository {
	return &LocationWriteRepository{db: db, txGetter: txGetter}
}

func (r *LocationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new location for the owner and returns the created record.
func (r *LocationWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, create models.LocationCreate) (*models.LocationDB, error) {
	query := `
		INSERT INTO locations (location_id, name, description, latitude, longitude, category_id, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + locationColumns + `
	`
	args := []any{uuid.New(), create.Name, create.Description, create.Latitude, create.Longitude, create.CategoryID, ownerID}

	var location models.LocationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &location, query, args...)

	logger.Log.Infow("location insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Update applies the non-nil fields of the partial update and returns the
// updated record, or nil if the location is absent or not owned by ownerID.
// A nil field keeps the stored value, so a category link cannot be cleared here.
func (r *LocationWriteRepository) Update(ctx context.Context, locationID, ownerID uuid.UUID, update models.LocationUpdate) (*models.LocationDB, error) {
	query := `
		UPDATE locations
		SET name        = COALESCE($3, name),
		    description = COALESCE($4, description),
		    latitude    = COALESCE($5, latitude),
		    longitude   = COALESCE($6, longitude),
		    category_id = COALESCE($7, category_id),
		    updated_at  = NOW()
		WHERE location_id = $1 AND owner_id = $2
		RETURNING ` + locationColumns + `
	`
	args := []any{locationID, ownerID, update.Name, update.Description, update.Latitude, update.Longitude, update.CategoryID}

	var location models.LocationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &location, query, args...)

	logger.Log.Infow("location update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Delete removes the owner's location and returns the deleted record,
// or nil under the same owner-scoped rule as GetByID.
func (r *LocationWriteRepository) Delete(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error) {
	query := `
		DELETE FROM locations
		WHERE location_id = $1 AND owner_id = $2
		RETURNING ` + locationColumns + `
	`
	args := []any{locationID, ownerID}

	var location models.LocationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &location, query, args...)

	logger.Log.Infow("location delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}
