// Package docs holds the swagger description of the outlines API.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Lists the options (years, terms, departments, courses or sections) under a path.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List a catalog level",
                "parameters": [
                    {"type": "string", "description": "slash separated path, e.g. 2024/fall", "name": "path", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Option"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/grid": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Fetches a section outline and lays its weekly meetings out on a Mon..Fri grid.",
                "produces": ["application/json", "application/yaml", "text/plain"],
                "tags": ["grid"],
                "summary": "Week grid of a section",
                "parameters": [
                    {"type": "string", "description": "section path, e.g. 2024/fall/cmpt/120/d100", "name": "path", "in": "query", "required": true},
                    {"type": "string", "description": "json (default), pjson, yaml, text or xlsx", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "204": {"description": "section has no weekly meetings"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/saved": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "List saved outlines",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SavedOutline"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Save a section outline",
                "parameters": [
                    {"description": "section path", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.saveRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SavedOutline"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/saved/{uuid}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Get a saved outline",
                "parameters": [
                    {"type": "string", "description": "saved outline id", "name": "uuid", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SavedOutline"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Fetches the section again and replaces the stored document.",
                "produces": ["application/json"],
                "tags": ["saved"],
                "summary": "Refresh a saved outline",
                "parameters": [
                    {"type": "string", "description": "saved outline id", "name": "uuid", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SavedOutline"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["saved"],
                "summary": "Delete a saved outline",
                "parameters": [
                    {"type": "string", "description": "saved outline id", "name": "uuid", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/saved/{uuid}/schedule.xlsx": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["saved"],
                "summary": "Download the week grid of a saved outline",
                "parameters": [
                    {"type": "string", "description": "saved outline id", "name": "uuid", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "204": {"description": "outline has no weekly meetings"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.saveRequest": {
            "type": "object",
            "required": ["path"],
            "properties": {"path": {"type": "string"}}
        },
        "models.Option": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "value": {"type": "string"}}
        },
        "models.SavedOutline": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "uuid": {"type": "string"},
                "path": {"type": "string"},
                "outline_path": {"type": "string"},
                "name": {"type": "string"},
                "title": {"type": "string"},
                "document": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "x-api-key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Course outlines API",
	Description:      "Browse the course-outline catalog, lay sections out on a week grid and keep saved outlines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
