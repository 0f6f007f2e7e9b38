// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/web/main.go -o docs
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
        "/api/v1/professionals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["directory"],
                "summary": "List professionals",
                "parameters": [
                    {"type": "string", "description": "Region", "name": "ezor", "in": "query"},
                    {"type": "string", "description": "Treatment type", "name": "sogeTipul", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfessionalsResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SessionResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ProfessionalCard": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fname": {"type": "string"},
                "lname": {"type": "string"},
                "gender": {"type": "string"},
                "ezor": {"type": "string"},
                "sogeTipul": {"type": "string"},
                "cardDescription": {"type": "string"}
            }
        },
        "handler.ProfessionalsResponse": {
            "type": "object",
            "properties": {
                "professionals": {"type": "array", "items": {"$ref": "#/definitions/domain.ProfessionalCard"}}
            }
        },
        "handler.SessionResponse": {
            "type": "object",
            "properties": {
                "logged_in": {"type": "boolean"},
                "user_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tipulim directory web API",
	Description:      "JSON endpoints of the professionals directory front end.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
