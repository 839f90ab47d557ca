package register

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, password, companyName string) (models.Identity, error) {
	args := m.Called(ctx, email, password, companyName)
	return args.Get(0).(models.Identity), args.Error(1)
}

type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) GenerateToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	acme := models.Identity{ID: "0190f1a2", Email: "a@b.com", CompanyName: "Acme"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(s *MockService, tk *MockTokens)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"email":"a@b.com","password":"pw","companyName":"Acme"}`,
			setupMock: func(s *MockService, tk *MockTokens) {
				s.On("Register", mock.Anything, "a@b.com", "pw", "Acme").Return(acme, nil).Once()
				tk.On("GenerateToken", "0190f1a2", "a@b.com").Return("jwt", nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"companyName":"Acme"`,
		},
		{
			name:           "нет названия компании",
			body:           `{"email":"a@b.com","password":"pw"}`,
			setupMock:      func(_ *MockService, _ *MockTokens) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field CompanyName is a required field`,
		},
		{
			name: "email занят",
			body: `{"email":"a@b.com","password":"pw","companyName":"Acme"}`,
			setupMock: func(s *MockService, _ *MockTokens) {
				s.On("Register", mock.Anything, "a@b.com", "pw", "Acme").
					Return(models.Identity{}, models.ErrRegistration).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"registration rejected"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tokens := new(MockTokens)
			tt.setupMock(svc, tokens)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, tokens)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}
