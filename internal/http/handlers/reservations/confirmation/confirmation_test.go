package confirmation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

type MockBook struct {
	mock.Mock
}

func (m *MockBook) Get(id string) (models.Reservation, bool) {
	args := m.Called(id)
	return args.Get(0).(models.Reservation), args.Bool(1)
}

func (m *MockBook) ResolveServiceName(serviceID string) string {
	return m.Called(serviceID).String(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderConfirmation(r models.Reservation, serviceName string) (string, error) {
	args := m.Called(r, serviceName)
	return args.String(0), args.Error(1)
}

func TestConfirmationHandler(t *testing.T) {
	john := models.Reservation{ID: "r1", CustomerName: "John Doe", CustomerEmail: "john@example.com", ServiceID: "1"}

	tests := []struct {
		name           string
		id             string
		setup          func(b *MockBook, r *MockRenderer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "письмо сформировано",
			id:   "r1",
			setup: func(b *MockBook, r *MockRenderer) {
				b.On("Get", "r1").Return(john, true).Once()
				b.On("ResolveServiceName", "1").Return("Oil Change").Once()
				r.On("RenderConfirmation", john, "Oil Change").Return("Dear John Doe", nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"body":"Dear John Doe"`,
		},
		{
			name: "запись не найдена",
			id:   "missing",
			setup: func(b *MockBook, _ *MockRenderer) {
				b.On("Get", "missing").Return(models.Reservation{}, false).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not found"`,
		},
		{
			name: "пустой шаблон",
			id:   "r1",
			setup: func(b *MockBook, r *MockRenderer) {
				b.On("Get", "r1").Return(john, true).Once()
				b.On("ResolveServiceName", "1").Return("Oil Change").Once()
				r.On("RenderConfirmation", john, "Oil Change").Return("", errors.New("empty")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not render confirmation"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := new(MockBook)
			renderer := new(MockRenderer)
			tt.setup(book, renderer)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), book, renderer)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+tt.id+"/confirmation", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			book.AssertExpectations(t)
			renderer.AssertExpectations(t)
		})
	}
}
