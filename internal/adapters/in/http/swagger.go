package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// apiDoc hands the contract to swag, which serves it as doc.json.
type apiDoc []byte

func (d apiDoc) ReadDoc() string {
	return string(d)
}

// swag panics when the same instance name is registered twice.
var registerDoc sync.Once

// RegisterSwaggerUI serves the Swagger UI for swagger under /swagger/.
func RegisterSwaggerUI(e *echo.Echo, swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return fmt.Errorf("encode api contract: %w", err)
	}

	registerDoc.Do(func() {
		swag.Register(swag.Name, apiDoc(doc))
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
