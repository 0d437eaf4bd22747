package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-world/internal/platform/logging"
)

// Path is the route the greeting is served on.
const Path = "/hello-world"

// Register wires the greeting route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello-world",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Get the greeting",
		Tags:        []string{"Greeting"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogDebug(ctx, "hello world", zap.String("path", Path))
	return &Output{Body: Data{Message: Message}}, nil
}
