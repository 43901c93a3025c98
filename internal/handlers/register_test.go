package handlers

import (
	"bytes"
	"encoding/json"
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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockRegisterer)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			body: `{"email":"john@example.com","username":"john_doe","password":"secret123"}`,
			setupMocks: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return(&models.UserDB{
						UserID:   uuid.New(),
						Email:    "john@example.com",
						Username: "john_doe",
						IsActive: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "email already registered",
			body: `{"email":"john@example.com","username":"john_doe","password":"secret123"}`,
			setupMocks: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Email already registered",
		},
		{
			name: "username already taken",
			body: `{"email":"john@example.com","username":"john_doe","password":"secret123"}`,
			setupMocks: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return(nil, services.ErrUsernameAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Username already taken",
		},
		{
			name:           "missing fields",
			body:           `{"email":"john@example.com"}`,
			setupMocks:     func(m *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email, username and password are required",
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			setupMocks:     func(m *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name: "internal error",
			body: `{"email":"john@example.com","username":"john_doe","password":"secret123"}`,
			setupMocks: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.setupMocks(mockSvc)
			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var resp RegisterErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp models.User
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "john_doe", resp.Username)
				assert.True(t, resp.IsActive)
			}
		})
	}
}

func TestRegisterHandlerDoesNotReturnPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "john@example.com", "john_doe", "secret123").
		Return(&models.UserDB{
			UserID:       uuid.New(),
			Email:        "john@example.com",
			Username:     "john_doe",
			PasswordHash: "$2a$10$somethingsecret",
			IsActive:     true,
		}, nil)

	handler := NewRegisterHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		bytes.NewBufferString(`{"email":"john@example.com","username":"john_doe","password":"secret123"}`))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "somethingsecret")
	assert.NotContains(t, rec.Body.String(), "password")
}
