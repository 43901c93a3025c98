package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapmyworld/mapmyworld-api/internal/geo"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

func TestLocationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	stored := []models.LocationDB{
		{LocationID: uuid.New(), Name: "Home", OwnerID: ownerID},
		{LocationID: uuid.New(), Name: "Office", OwnerID: ownerID},
	}

	mockReader := services.NewMockLocationReader(ctrl)
	mockReader.EXPECT().
		ListByOwner(gomock.Any(), ownerID, 0, 100).
		Return(stored, nil)

	svc := services.NewLocationService(mockReader, services.NewMockLocationWriter(ctrl), services.NewMockCategoryChecker(ctrl), nil)

	locations, err := svc.List(context.Background(), ownerID, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, stored, locations)
}

func TestLocationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	locationID := uuid.New()
	stored := &models.LocationDB{LocationID: locationID, Name: "Home", OwnerID: ownerID}

	tests := []struct {
		name    string
		found   *models.LocationDB
		readErr error
		wantErr error
	}{
		{name: "found", found: stored},
		{name: "absent or foreign owner", found: nil, wantErr: services.ErrLocationNotFound},
		{name: "reader error", readErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockLocationReader(ctrl)
			mockReader.EXPECT().
				GetByID(gomock.Any(), locationID, ownerID).
				Return(tt.found, tt.readErr)

			svc := services.NewLocationService(mockReader, services.NewMockLocationWriter(ctrl), services.NewMockCategoryChecker(ctrl), nil)

			location, err := svc.Get(context.Background(), locationID, ownerID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, location)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.found, location)
			}
		})
	}
}

func TestLocationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	categoryID := uuid.New()

	t.Run("without category", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		create := models.LocationCreate{Name: "Home", Latitude: 19.4326, Longitude: -99.1332}
		saved := &models.LocationDB{LocationID: uuid.New(), Name: "Home", OwnerID: ownerID}

		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, create).
			Return(saved, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), nil)

		location, err := svc.Create(context.Background(), ownerID, create)
		assert.NoError(t, err)
		assert.Equal(t, saved, location)
	})

	t.Run("with existing category", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		mockCategories := services.NewMockCategoryChecker(ctrl)
		create := models.LocationCreate{Name: "Cafe", Latitude: 19.44, Longitude: -99.14, CategoryID: &categoryID}
		saved := &models.LocationDB{LocationID: uuid.New(), Name: "Cafe", OwnerID: ownerID, CategoryID: &categoryID}

		mockCategories.EXPECT().
			GetByID(gomock.Any(), categoryID).
			Return(&models.CategoryDB{CategoryID: categoryID, Name: "Restaurants"}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, create).
			Return(saved, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, mockCategories, nil)

		location, err := svc.Create(context.Background(), ownerID, create)
		assert.NoError(t, err)
		assert.Equal(t, saved, location)
	})

	t.Run("missing category", func(t *testing.T) {
		mockCategories := services.NewMockCategoryChecker(ctrl)
		create := models.LocationCreate{Name: "Cafe", Latitude: 19.44, Longitude: -99.14, CategoryID: &categoryID}

		mockCategories.EXPECT().
			GetByID(gomock.Any(), categoryID).
			Return(nil, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), services.NewMockLocationWriter(ctrl), mockCategories, nil)

		location, err := svc.Create(context.Background(), ownerID, create)
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
		assert.Nil(t, location)
	})

	t.Run("publishes audit event", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		create := models.LocationCreate{Name: "Home", Latitude: 19.4326, Longitude: -99.1332}
		saved := &models.LocationDB{LocationID: uuid.New(), Name: "Home", OwnerID: ownerID}

		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, create).
			Return(saved, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, saved.LocationID.String(), string(msgs[0].Key))

				var event models.LocationEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "created", event.Operation)
				assert.Equal(t, saved.LocationID.String(), event.LocationID)
				assert.Equal(t, ownerID.String(), event.OwnerID)
				assert.Equal(t, "Home", event.Name)
				return nil
			})

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), mockKafka)

		_, err := svc.Create(context.Background(), ownerID, create)
		assert.NoError(t, err)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		create := models.LocationCreate{Name: "Home", Latitude: 19.4326, Longitude: -99.1332}
		saved := &models.LocationDB{LocationID: uuid.New(), Name: "Home", OwnerID: ownerID}

		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, create).
			Return(saved, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), mockKafka)

		location, err := svc.Create(context.Background(), ownerID, create)
		assert.NoError(t, err)
		assert.Equal(t, saved, location)
	})
}

func TestLocationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	locationID := uuid.New()
	categoryID := uuid.New()
	newName := "Renamed"

	t.Run("partial update", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		update := models.LocationUpdate{Name: &newName}
		updated := &models.LocationDB{LocationID: locationID, Name: newName, OwnerID: ownerID}

		mockWriter.EXPECT().
			Update(gomock.Any(), locationID, ownerID, update).
			Return(updated, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), nil)

		location, err := svc.Update(context.Background(), locationID, ownerID, update)
		assert.NoError(t, err)
		assert.Equal(t, updated, location)
	})

	t.Run("absent or foreign owner", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		update := models.LocationUpdate{Name: &newName}

		mockWriter.EXPECT().
			Update(gomock.Any(), locationID, ownerID, update).
			Return(nil, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), nil)

		location, err := svc.Update(context.Background(), locationID, ownerID, update)
		assert.ErrorIs(t, err, services.ErrLocationNotFound)
		assert.Nil(t, location)
	})

	t.Run("missing category reference", func(t *testing.T) {
		mockCategories := services.NewMockCategoryChecker(ctrl)
		update := models.LocationUpdate{CategoryID: &categoryID}

		mockCategories.EXPECT().
			GetByID(gomock.Any(), categoryID).
			Return(nil, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), services.NewMockLocationWriter(ctrl), mockCategories, nil)

		location, err := svc.Update(context.Background(), locationID, ownerID, update)
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
		assert.Nil(t, location)
	})
}

func TestLocationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	locationID := uuid.New()

	t.Run("deleted record is returned", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)
		deleted := &models.LocationDB{LocationID: locationID, Name: "Home", OwnerID: ownerID}

		mockWriter.EXPECT().
			Delete(gomock.Any(), locationID, ownerID).
			Return(deleted, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), nil)

		location, err := svc.Delete(context.Background(), locationID, ownerID)
		assert.NoError(t, err)
		assert.Equal(t, deleted, location)
	})

	t.Run("absent or foreign owner", func(t *testing.T) {
		mockWriter := services.NewMockLocationWriter(ctrl)

		mockWriter.EXPECT().
			Delete(gomock.Any(), locationID, ownerID).
			Return(nil, nil)

		svc := services.NewLocationService(services.NewMockLocationReader(ctrl), mockWriter, services.NewMockCategoryChecker(ctrl), nil)

		location, err := svc.Delete(context.Background(), locationID, ownerID)
		assert.ErrorIs(t, err, services.ErrLocationNotFound)
		assert.Nil(t, location)
	})
}

func TestLocationService_SearchNearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	centerLat, centerLng := 19.4326, -99.1332

	center := models.LocationDB{LocationID: uuid.New(), Name: "Zocalo", Latitude: 19.4326, Longitude: -99.1332, OwnerID: ownerID}
	near := models.LocationDB{LocationID: uuid.New(), Name: "Condesa", Latitude: 19.4400, Longitude: -99.1400, OwnerID: ownerID}
	far := models.LocationDB{LocationID: uuid.New(), Name: "Toluca", Latitude: 20.0, Longitude: -100.0, OwnerID: ownerID}
	all := []models.LocationDB{center, near, far}

	newService := func(stored []models.LocationDB) *services.LocationService {
		mockReader := services.NewMockLocationReader(ctrl)
		mockReader.EXPECT().
			ListAllByOwner(gomock.Any(), ownerID).
			Return(stored, nil)
		return services.NewLocationService(mockReader, services.NewMockLocationWriter(ctrl), services.NewMockCategoryChecker(ctrl), nil)
	}

	t.Run("small radius keeps nearby points", func(t *testing.T) {
		svc := newService(all)
		result, err := svc.SearchNearby(context.Background(), ownerID, centerLat, centerLng, 5)
		assert.NoError(t, err)
		assert.Equal(t, []models.LocationDB{center, near}, result)
	})

	t.Run("large radius keeps all points", func(t *testing.T) {
		svc := newService(all)
		result, err := svc.SearchNearby(context.Background(), ownerID, centerLat, centerLng, 200)
		assert.NoError(t, err)
		assert.Equal(t, all, result)
	})

	t.Run("boundary distance is inclusive", func(t *testing.T) {
		exact := geo.Distance(centerLat, centerLng, near.Latitude, near.Longitude)
		svc := newService([]models.LocationDB{near})
		result, err := svc.SearchNearby(context.Background(), ownerID, centerLat, centerLng, exact)
		assert.NoError(t, err)
		assert.Equal(t, []models.LocationDB{near}, result)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		svc := newService([]models.LocationDB{far})
		result, err := svc.SearchNearby(context.Background(), ownerID, centerLat, centerLng, 5)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader := services.NewMockLocationReader(ctrl)
		mockReader.EXPECT().
			ListAllByOwner(gomock.Any(), ownerID).
			Return(nil, errors.New("db error"))
		svc := services.NewLocationService(mockReader, services.NewMockLocationWriter(ctrl), services.NewMockCategoryChecker(ctrl), nil)

		result, err := svc.SearchNearby(context.Background(), ownerID, centerLat, centerLng, 5)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
