package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>resumeforge — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the editing-session and generate APIs.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "resumeforge", "version": "v0.1.0" },
  "paths": {
    "/api/sessions": {
      "post": { "summary": "Start an editing session", "responses": { "201": { "description": "session id returned" } } }
    },
    "/api/sessions/{id}": {
      "get": { "summary": "Current document snapshot", "responses": { "200": { "description": "snapshot" }, "404": { "description": "unknown session" } } },
      "delete": { "summary": "End the session", "responses": { "204": { "description": "ended" } } }
    },
    "/api/sessions/{id}/reset": {
      "post": { "summary": "Reset the document to empty defaults", "responses": { "200": { "description": "snapshot" } } }
    },
    "/api/sessions/{id}/template": {
      "put": { "summary": "Select a template (card-flip|timeline|skill-galaxy)", "responses": { "200": { "description": "snapshot" }, "400": { "description": "unknown template" } } }
    },
    "/api/sessions/{id}/preview": {
      "get": { "summary": "Rendered HTML for the selected template", "responses": { "200": { "description": "html" } } }
    },
    "/api/sessions/{id}/errors": {
      "get": { "summary": "All recorded validation messages", "responses": { "200": { "description": "error maps per section" } } }
    },
    "/api/generate": {
      "post": { "summary": "Validate and claim a resume username", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"resumeData":{"type":"object"}}}}}}, "responses": { "200": { "description": "url generated" }, "400": { "description": "validation failure or reserved/taken name" } } },
      "get": { "summary": "Check username availability", "parameters": [{"name":"username","in":"query","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "availability" }, "400": { "description": "missing username" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
