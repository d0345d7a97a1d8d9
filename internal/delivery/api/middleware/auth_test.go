package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"venture/internal/domain/service"
	mockSvc "venture/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
		wantUserID uuid.UUID
	}{
		{
			name:   "valid access token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
			wantStatus: http.StatusOK,
			wantUserID: userID,
		},
		{
			name:       "missing header",
			header:     "",
			setupMock:  func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setupMock:  func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "refresh token rejected",
			header: "Bearer refresh",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setupMock(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID uuid.UUID
			next := func(c echo.Context) error {
				gotUserID, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			}

			err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHENTICATED"`)
				assert.NotContains(t, rec.Body.String(), `"details"`)
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set("userID", "not-a-uuid")
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
