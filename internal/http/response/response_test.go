package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid credentials", err: fmt.Errorf("op: %w", models.ErrInvalidCredentials), wantStatus: http.StatusUnauthorized, wantMsg: "invalid credentials"},
		{name: "registration", err: fmt.Errorf("op: %w", models.ErrRegistration), wantStatus: http.StatusConflict, wantMsg: "registration rejected"},
		{name: "unknown plan", err: fmt.Errorf("op: %w", models.ErrUnknownPlan), wantStatus: http.StatusNotFound, wantMsg: "unknown plan"},
		{name: "not found", err: fmt.Errorf("op: %w", models.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "not found"},
		{name: "payment", err: fmt.Errorf("op: %w", models.ErrPayment), wantStatus: http.StatusPaymentRequired, wantMsg: "payment failed"},
		{name: "superseded", err: fmt.Errorf("op: %w", models.ErrSuperseded), wantStatus: http.StatusConflict},
		{name: "invalid", err: fmt.Errorf("op: %w", models.ErrInvalid), wantStatus: http.StatusUnprocessableEntity, wantMsg: "invalid input"},
		{name: "unexpected", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := response.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, response.StatusError, resp.Status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	type request struct {
		Name  string  `validate:"required"`
		Email string  `validate:"required,email"`
		Color string  `validate:"hexcolor"`
		Price float64 `validate:"gte=0"`
	}
	err := validator.New().Struct(request{Email: "nope", Color: "blue", Price: -1})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	resp := response.ValidationError(verrs)

	assert.Equal(t, response.StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name is a required field")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Color must be a color in format #RRGGBB")
	assert.Contains(t, resp.Error, "field Price must be at least 0")
}

func TestFromError_WrappedValidation(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}
	verr := validator.New().Struct(request{})
	err := fmt.Errorf("settings.Update: %w: %w", models.ErrInvalid, verr)

	status, resp := response.FromError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "field Name is a required field", resp.Error)
}

func TestRedirect(t *testing.T) {
	resp := response.Redirect("subscription required", "/subscription")
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, map[string]string{"redirect": "/subscription"}, resp.Data)
}
