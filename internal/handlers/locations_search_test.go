package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

func TestLocationsSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe", IsActive: true}

	t.Run("returns locations within the radius", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)
		stored := []models.LocationDB{
			{LocationID: uuid.New(), Name: "Zocalo", Latitude: 19.4326, Longitude: -99.1332, OwnerID: user.UserID},
			{LocationID: uuid.New(), Name: "Condesa", Latitude: 19.44, Longitude: -99.14, OwnerID: user.UserID},
		}
		mockSvc.EXPECT().
			SearchNearby(gomock.Any(), user.UserID, 19.4326, -99.1332, 5.0).
			Return(stored, nil)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=19.4326&center_lng=-99.1332&radius_km=5", nil, user))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []models.Location
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)
		mockSvc.EXPECT().
			SearchNearby(gomock.Any(), user.UserID, 0.0, 0.0, 1.0).
			Return([]models.LocationDB{}, nil)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=0&center_lng=0&radius_km=1", nil, user))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("missing center parameters", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?radius_km=5", nil, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("center out of range", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=95&center_lng=0&radius_km=5", nil, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive radius", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=0&center_lng=0&radius_km=0", nil, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("radius above the configured cap", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)

		handler := NewLocationsSearchHandler(mockSvc, 100)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=0&center_lng=0&radius_km=250", nil, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero cap disables the limit", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)
		mockSvc.EXPECT().
			SearchNearby(gomock.Any(), user.UserID, 0.0, 0.0, 25000.0).
			Return([]models.LocationDB{}, nil)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=0&center_lng=0&radius_km=25000", nil, user))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockNearbySearcher(ctrl)

		handler := NewLocationsSearchHandler(mockSvc, 0)
		rec := httptest.NewRecorder()
		handler(rec, authedRequest(http.MethodGet,
			"/api/v1/locations/search/nearby?center_lat=0&center_lng=0&radius_km=5", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
