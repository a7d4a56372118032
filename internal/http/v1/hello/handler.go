package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

// Register wires the hello route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Get the greeting",
		Tags:        []string{"Hello"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LoggerFromContext(ctx).Debug("hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Greeting()}, nil
}
