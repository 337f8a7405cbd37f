package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc serves the document to the swagger UI.
type swaggerDoc struct {
	body string
}

func (d swaggerDoc) ReadDoc() string { return d.body }

// registerSwagger makes doc the default swag document read by echo-swagger.
// Registering twice (tests building several routers) is a no-op.
func registerSwagger(doc *openapi3.T) error {
	if _, err := swag.ReadDoc(); err == nil {
		return nil
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, swaggerDoc{body: string(body)})
	return nil
}
