package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-world/internal/platform/logging"
)

const (
	// Path is the route probed by load balancers and orchestrators.
	Path = "/health_check"
	// ServiceName identifies this service in health responses.
	ServiceName = "hello-world"
	// StatusOK is reported while the process is serving.
	StatusOK = "ok"
)

// Response is the payload for the health endpoint.
type Response struct {
	ServiceName string `json:"service_name" doc:"Name of the reporting service" example:"hello-world"`
	Status      string `json:"status"       doc:"Service status"                example:"ok"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Response
}

// Register wires the health route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        Path,
		Summary:     "Report service health",
		Tags:        []string{"Health"},
	}, handler)
}

// Probes hit this frequently, so it logs at debug.
func handler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogDebug(ctx, "health check", zap.String("path", Path))
	return &Output{Body: Response{ServiceName: ServiceName, Status: StatusOK}}, nil
}
