package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portal.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>crestadmit-portal — Swagger</title>
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

// Minimal OpenAPI document describing the auth and dashboard endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "crestadmit-portal", "version": "v0.1.0" },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Exchange authorization code / login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"mode":{"type":"string"},"username":{"type":"string"},"password":{"type":"string"},"code":{"type":"string"},"redirect_uri":{"type":"string"}}}}}},
        "responses": { "200": { "description": "tokens returned" } }
      }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/v1/me": {
      "get": { "summary": "Get user info", "responses": { "200": { "description": "user or claims" } } }
    },
    "/api/v1/catalog": {
      "get": { "summary": "List selectable schools and application rounds", "responses": { "200": { "description": "catalog" } } }
    },
    "/api/v1/portal": {
      "get": { "summary": "Client dashboard snapshot (profile, documents, deadlines, stats)", "responses": { "200": { "description": "snapshot" }, "403": { "description": "wrong role" } } }
    },
    "/api/v1/portal/documents": {
      "post": { "summary": "Create a document", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"documentType":{"type":"string"},"title":{"type":"string"},"school":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "missing fields" } } }
    },
    "/api/v1/portal/documents/{id}/draft": {
      "put": { "summary": "Save a draft revision", "responses": { "200": { "description": "saved" }, "400": { "description": "finalized" }, "403": { "description": "not the owner" } } }
    },
    "/api/v1/portal/documents/{id}/submit": {
      "put": { "summary": "Submit a document for review", "responses": { "200": { "description": "submitted" } } }
    },
    "/api/v1/portal/targets": {
      "put": { "summary": "Update target schools and application round", "responses": { "200": { "description": "updated profile" } } }
    },
    "/api/v1/admin": {
      "get": { "summary": "Admin dashboard snapshot (roster, documents, stats)", "responses": { "200": { "description": "snapshot" }, "403": { "description": "wrong role" } } }
    },
    "/api/v1/admin/documents/{id}/feedback": {
      "put": { "summary": "Attach reviewer feedback to a document", "responses": { "200": { "description": "saved" } } }
    },
    "/api/v1/admin/documents/{id}/review": {
      "put": { "summary": "Save a reviewed revision (content and feedback)", "responses": { "200": { "description": "saved" } } }
    },
    "/api/v1/admin/clients/{id}": {
      "put": { "summary": "Update a client's review status and notes", "responses": { "200": { "description": "updated" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
