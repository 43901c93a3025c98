package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mapmyworld/mapmyworld-api/internal/geo"
	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

var (
	// ErrLocationNotFound covers both a missing id and an id owned by another
	// user; callers cannot tell the two apart.
	ErrLocationNotFound = errors.New("location not found")
)

// LocationReader defines owner-scoped location lookups.
type LocationReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]models.LocationDB, error)
	ListAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error)
	GetByID(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error)
}

// LocationWriter defines owner-scoped location write operations.
type LocationWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, create models.LocationCreate) (*models.LocationDB, error)
	Update(ctx context.Context, locationID, ownerID uuid.UUID, update models.LocationUpdate) (*models.LocationDB, error)
	Delete(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error)
}

// CategoryChecker verifies category references on location writes.
type CategoryChecker interface {
	GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LocationService handles location CRUD, proximity search and audit publishing.
type LocationService struct {
	reader      LocationReader
	writer      LocationWriter
	categories  CategoryChecker
	kafkaWriter KafkaWriter
}

// NewLocationService creates a new LocationService.
func NewLocationService(
	reader LocationReader,
	writer LocationWriter,
	categories CategoryChecker,
	kafkaWriter KafkaWriter,
) *LocationService {
	return &LocationService{
		reader:      reader,
		writer:      writer,
		categories:  categories,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a location audit event to Kafka, best effort.
func (svc *LocationService) publishEvent(ctx context.Context, operation string, location *models.LocationDB) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.LocationEvent{
		EventID:    uuid.NewString(),
		Operation:  operation,
		LocationID: location.LocationID.String(),
		OwnerID:    location.OwnerID.String(),
		Name:       location.Name,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal location event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.LocationID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish location event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("location event published", "event_id", event.EventID, "operation", operation)
	}
}

// checkCategory resolves an optional category reference.
func (svc *LocationService) checkCategory(ctx context.Context, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	category, err := svc.categories.GetByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

// List returns a page of the owner's locations.
func (svc *LocationService) List(ctx context.Context, ownerID uuid.UUID, skip, limit int) ([]models.LocationDB, error) {
	locations, err := svc.reader.ListByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list locations", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return locations, nil
}

// Get returns the owner's location or ErrLocationNotFound.
func (svc *LocationService) Get(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error) {
	location, err := svc.reader.GetByID(ctx, locationID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get location", "location_id", locationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

// Create stores a new location for the owner. A category reference, if
// present, must resolve to an existing category.
func (svc *LocationService) Create(ctx context.Context, ownerID uuid.UUID, create models.LocationCreate) (*models.LocationDB, error) {
	if err := svc.checkCategory(ctx, create.CategoryID); err != nil {
		return nil, err
	}

	location, err := svc.writer.Save(ctx, ownerID, create)
	if err != nil {
		logger.Log.Errorw("failed to save location", "owner_id", ownerID, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, "created", location)
	return location, nil
}

// Update applies a partial update to the owner's location. A category
// reference in the update must resolve, same as on create.
func (svc *LocationService) Update(ctx context.Context, locationID, ownerID uuid.UUID, update models.LocationUpdate) (*models.LocationDB, error) {
	if err := svc.checkCategory(ctx, update.CategoryID); err != nil {
		return nil, err
	}

	location, err := svc.writer.Update(ctx, locationID, ownerID, update)
	if err != nil {
		logger.Log.Errorw("failed to update location", "location_id", locationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	svc.publishEvent(ctx, "updated", location)
	return location, nil
}

// Delete removes the owner's location and returns the deleted record.
func (svc *LocationService) Delete(ctx context.Context, locationID, ownerID uuid.UUID) (*models.LocationDB, error) {
	location, err := svc.writer.Delete(ctx, locationID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete location", "location_id", locationID, "err", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	svc.publishEvent(ctx, "deleted", location)
	return location, nil
}

// SearchNearby returns the owner's locations within radiusKm of the center,
// boundary inclusive. The scan is linear over the owner's full location set.
// TODO: replace the full scan with a spatial index once per-user sets grow.
func (svc *LocationService) SearchNearby(ctx context.Context, ownerID uuid.UUID, centerLat, centerLng, radiusKm float64) ([]models.LocationDB, error) {
	locations, err := svc.reader.ListAllByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load locations for search", "owner_id", ownerID, "err", err)
		return nil, err
	}

	result := []models.LocationDB{}
	for _, location := range locations {
		if geo.Distance(centerLat, centerLng, location.Latitude, location.Longitude) <= radiusKm {
			result = append(result, location)
		}
	}
	return result, nil
}
