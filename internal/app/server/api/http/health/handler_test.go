package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "health check returns OK",
			expectedCode:   http.StatusOK,
			expectedStatus: "OK",
		},
		{
			name:           "storage is down",
			pingErr:        errors.New("connection refused"),
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "Degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			storage := pingerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.pingErr
			})
			handler := NewHandler(storage, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, output.Status)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
		})
	}
}

func TestHandler_Route(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(pingerFunc(func(context.Context) error { return nil }), slog.Default(), nil).SetupRoutes(api)

	resp := api.Get("/api/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"OK"`)
	assert.Contains(t, resp.Body.String(), `"storage":"OK"`)
}
