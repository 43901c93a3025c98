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
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

func TestLocationsGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe", IsActive: true}
	locationID := uuid.New()

	t.Run("returns the location", func(t *testing.T) {
		mockSvc := NewMockLocationGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), locationID, user.UserID).
			Return(&models.LocationDB{LocationID: locationID, Name: "Home", OwnerID: user.UserID}, nil)

		handler := NewLocationsGetHandler(mockSvc)
		req := withURLParam(authedRequest(http.MethodGet, "/api/v1/locations/"+locationID.String(), nil, user), "id", locationID.String())
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.Location
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Home", resp.Name)
	})

	t.Run("absent or foreign owner", func(t *testing.T) {
		mockSvc := NewMockLocationGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), locationID, user.UserID).
			Return(nil, services.ErrLocationNotFound)

		handler := NewLocationsGetHandler(mockSvc)
		req := withURLParam(authedRequest(http.MethodGet, "/api/v1/locations/"+locationID.String(), nil, user), "id", locationID.String())
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp LocationsErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Location not found", resp.Error)
	})

	t.Run("malformed id never reaches the service", func(t *testing.T) {
		mockSvc := NewMockLocationGetter(ctrl)

		handler := NewLocationsGetHandler(mockSvc)
		req := withURLParam(authedRequest(http.MethodGet, "/api/v1/locations/not-a-uuid", nil, user), "id", "not-a-uuid")
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockLocationGetter(ctrl)

		handler := NewLocationsGetHandler(mockSvc)
		req := withURLParam(authedRequest(http.MethodGet, "/api/v1/locations/"+locationID.String(), nil, nil), "id", locationID.String())
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
