package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-world/internal/http/health"
	"github.com/janisto/hello-world/internal/http/hello"
)

// Register wires all HTTP routes into the provided API.
func Register(api huma.API) {
	hello.Register(api)
	health.Register(api)
}
