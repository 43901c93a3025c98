package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mapmyworld/mapmyworld-api/internal/models"
	"github.com/mapmyworld/mapmyworld-api/internal/services"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe", IsActive: true}

	t.Run("valid token stores the user in context", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockResolver := NewMockUserResolver(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockResolver.EXPECT().GetCurrentUser(gomock.Any(), "token").Return(user, nil)

		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			assert.Equal(t, user, GetUserFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		handler := AuthMiddleware(mockTokener, mockResolver)(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing token yields 401", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockResolver := NewMockUserResolver(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no authorization header"))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})

		handler := AuthMiddleware(mockTokener, mockResolver)(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unresolvable token yields 401", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockResolver := NewMockUserResolver(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockResolver.EXPECT().GetCurrentUser(gomock.Any(), "token").Return(nil, services.ErrUnauthenticated)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})

		handler := AuthMiddleware(mockTokener, mockResolver)(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("inactive account yields 403", func(t *testing.T) {
		mockTokener := NewMockTokener(ctrl)
		mockResolver := NewMockUserResolver(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockResolver.EXPECT().GetCurrentUser(gomock.Any(), "token").Return(nil, services.ErrInactiveUser)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})

		handler := AuthMiddleware(mockTokener, mockResolver)(next)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := SetUserToContext(req.Context(), user)

	assert.Equal(t, user, GetUserFromContext(ctx))
	assert.Nil(t, GetUserFromContext(req.Context()))
}
