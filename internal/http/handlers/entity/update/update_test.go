package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(id string, patch models.CustomField) (models.CustomField, error) {
	args := m.Called(id, patch)
	return args.Get(0).(models.CustomField), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление",
			id:   "field-1",
			body: `{"label":"VIN","type":"text","required":true}`,
			setupMock: func(m *MockService) {
				m.On("Update", "field-1", models.CustomField{Label: "VIN", Type: "text", Required: true}).
					Return(models.CustomField{ID: "field-1", Label: "VIN", Type: "text", Required: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"label":"VIN"`,
		},
		{
			name: "запись не найдена",
			id:   "missing",
			body: `{"label":"VIN","type":"text"}`,
			setupMock: func(m *MockService) {
				m.On("Update", "missing", mock.Anything).Return(models.CustomField{}, models.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not found"`,
		},
		{
			name:           "недопустимый тип поля",
			id:             "field-1",
			body:           `{"label":"VIN","type":"color"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Type must be one of`,
		},
		{
			name:           "нет id",
			id:             "",
			body:           `{"label":"VIN","type":"text"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"id is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			handler := New[models.CustomField](slog.New(slog.NewTextHandler(io.Discard, nil)), "custom-fields", svc)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/custom-fields/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Update(id string, patch models.Reservation) (models.Reservation, error) {
	args := m.Called(id, patch)
	return args.Get(0).(models.Reservation), args.Error(1)
}

func TestUpdateHandler_Reservation(t *testing.T) {
	patch := models.Reservation{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "(555) 987-6543",
		ServiceID:     "2",
		Date:          "2024-03-21",
		Time:          "14:30",
		Status:        models.StatusConfirmed,
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockReservationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление записи",
			body: `{"customerName":"Jane","customerEmail":"jane@example.com","customerPhone":"(555) 987-6543","serviceId":"2","date":"2024-03-21","time":"14:30","status":"confirmed"}`,
			setupMock: func(m *MockReservationService) {
				updated := patch
				updated.ID = "2"
				m.On("Update", "2", patch).Return(updated, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"confirmed"`,
		},
		{
			name:           "несуществующая дата",
			body:           `{"customerName":"Jane","customerEmail":"jane@example.com","customerPhone":"1","serviceId":"2","date":"2024-02-30","time":"14:30"}`,
			setupMock:      func(_ *MockReservationService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Date must match format 2006-01-02`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockReservationService)
			tt.setupMock(svc)
			handler := New[models.Reservation](slog.New(slog.NewTextHandler(io.Discard, nil)), "reservations", svc)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/2", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "2")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
