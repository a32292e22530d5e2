// Package docs serves the OpenAPI description of the product API and a
// Swagger UI page that renders it.
package docs

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

// YAML contains the embedded OpenAPI document.
//
//go:embed openapi.yaml
var YAML []byte

const uiPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Produtos API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.onload = function () {
        SwaggerUIBundle({ url: "/openapi.yaml", dom_id: "#swagger-ui" });
      };
    </script>
  </body>
</html>`

// RegisterRoutes mounts /openapi.yaml and the UI at /apidocs.
func RegisterRoutes(router fiber.Router) {
	router.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(YAML)
	})
	router.Get("/apidocs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(uiPage)
	})
}
