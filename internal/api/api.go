// Package api builds the huma API shared by the server and handler tests.
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

const (
	// Title is the OpenAPI document title.
	Title = "Hello World Service"
	// DocsPath serves the interactive API reference.
	DocsPath = "/api-docs"
)

// NewConfig returns the huma configuration for the service.
//
// The schema link hook is dropped so response bodies carry only their
// declared fields and no "$schema" member or Link header.
func NewConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	return cfg
}

// New mounts a huma API on router and advertises CBOR alongside JSON for
// every operation in the OpenAPI document.
func New(router chi.Router, version string) huma.API {
	a := humachi.New(router, NewConfig(version))
	a.OpenAPI().OnAddOperation = append(a.OpenAPI().OnAddOperation, addCBORContent)
	return a
}

func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
