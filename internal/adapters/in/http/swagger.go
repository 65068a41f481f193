package http

import (
	"encoding/json"
	"sync"

	"ordering/internal/generated/servers"

	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

// openAPIDoc feeds the embedded OpenAPI document to echo-swagger.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func registerSwaggerDoc() {
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
}
