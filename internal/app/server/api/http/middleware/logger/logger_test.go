package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applog "todosync/internal/utils/logger"
)

type pingOutput struct {
	Body struct {
		Pong bool `json:"pong"`
	}
}

func newAPI(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	mw := New(applog.NewWithWriter("prod", buf))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Pong = true
		return out, nil
	})
	return api
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := newAPI(t, &buf)

	resp := api.Get("/ping")
	require.Equal(t, http.StatusOK, resp.Code)

	id := resp.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestMiddleware_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := newAPI(t, &buf)

	resp := api.Get("/ping", HeaderRequestID+": req-42")

	assert.Equal(t, "req-42", resp.Header().Get(HeaderRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
