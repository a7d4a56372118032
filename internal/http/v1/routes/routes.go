package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/hello-service/internal/http/v1/hello"
	"github.com/janisto/hello-service/internal/platform/respond"
)

// Title is the API title reported in the OpenAPI document.
const Title = "Hello Service"

// NewAPI creates the huma API on router. The OpenAPI, docs and schema routes
// are not mounted and responses carry no $schema link, so /hello stays the
// only routable path and its body is exactly the greeting.
func NewAPI(router chi.Router, version string) huma.API {
	cfg := huma.DefaultConfig(Title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	cfg.Formats = respond.Formats()
	cfg.DefaultFormat = "application/json"
	return humachi.New(router, cfg)
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	hello.Register(api)
}
