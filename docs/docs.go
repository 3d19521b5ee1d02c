// Package docs registers the swagger descriptor served under /swagger.
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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/analytics/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Planning progress summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DashboardSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/budget": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budget"], "summary": "List budget items", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Budget"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["budget"], "summary": "Create budget item", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Budget"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Budget"}}}}
        },
        "/budget/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["budget"], "summary": "Update budget item", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Budget"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}
        },
        "/guests": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["guests"], "summary": "List guests", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Guest"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["guests"], "summary": "Create guest", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Guest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Guest"}}}}
        },
        "/guests/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["guests"], "summary": "Update guest", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Guest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}
        },
        "/vendors": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["vendors"], "summary": "List vendors", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Vendor"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["vendors"], "summary": "Create vendor", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Vendor"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Vendor"}}}}
        },
        "/vendors/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["vendors"], "summary": "Update vendor", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Vendor"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}
        },
        "/tasks": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "List tasks", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Task"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Create task", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Task"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Task"}}}}
        },
        "/tasks/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["tasks"], "summary": "Update task", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Task"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}
        },
        "/venues": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["venues"], "summary": "List venues", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Venue"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["venues"], "summary": "Create venue", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Venue"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Venue"}}}}
        },
        "/venues/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["venues"], "summary": "Update venue", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Venue"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}}}}
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string", "example": "bearer"}}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "full_name", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "full_name": {"type": "string"},
                "wedding_date": {"type": "string", "example": "2026-06-20"},
                "partner_name": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "wedding_date": {"type": "string"},
                "partner_name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "model.Budget": {
            "type": "object",
            "required": ["category", "planned_amount"],
            "properties": {
                "id": {"type": "string", "readOnly": true},
                "user_id": {"type": "string", "readOnly": true},
                "created_at": {"type": "string", "readOnly": true},
                "category": {"type": "string"},
                "planned_amount": {"type": "number"},
                "spent_amount": {"type": "number"},
                "vendor": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "model.Guest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "id": {"type": "string", "readOnly": true},
                "user_id": {"type": "string", "readOnly": true},
                "created_at": {"type": "string", "readOnly": true},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "rsvp_status": {"type": "string", "example": "pending"},
                "dietary_restrictions": {"type": "string"},
                "plus_one": {"type": "boolean"},
                "group": {"type": "string"}
            }
        },
        "model.Vendor": {
            "type": "object",
            "required": ["category", "name"],
            "properties": {
                "id": {"type": "string", "readOnly": true},
                "user_id": {"type": "string", "readOnly": true},
                "created_at": {"type": "string", "readOnly": true},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "contact_person": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "price_quote": {"type": "number"},
                "rating": {"type": "integer"},
                "status": {"type": "string", "example": "researching"},
                "notes": {"type": "string"}
            }
        },
        "model.Task": {
            "type": "object",
            "required": ["category", "title"],
            "properties": {
                "id": {"type": "string", "readOnly": true},
                "user_id": {"type": "string", "readOnly": true},
                "created_at": {"type": "string", "readOnly": true},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "due_date": {"type": "string"},
                "completed": {"type": "boolean"},
                "priority": {"type": "string"},
                "assigned_to": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "model.Venue": {
            "type": "object",
            "required": ["address", "name", "venue_type"],
            "properties": {
                "id": {"type": "string", "readOnly": true},
                "user_id": {"type": "string", "readOnly": true},
                "created_at": {"type": "string", "readOnly": true},
                "name": {"type": "string"},
                "venue_type": {"type": "string"},
                "address": {"type": "string"},
                "capacity": {"type": "integer"},
                "price": {"type": "number"},
                "rating": {"type": "integer"},
                "status": {"type": "string", "example": "considering"},
                "contact_person": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "model.DashboardSummary": {
            "type": "object",
            "properties": {
                "budget": {"type": "object", "properties": {"total_planned": {"type": "number"}, "total_spent": {"type": "number"}, "remaining": {"type": "number"}, "categories": {"type": "integer"}}},
                "guests": {"type": "object", "properties": {"total": {"type": "integer"}, "accepted": {"type": "integer"}, "declined": {"type": "integer"}, "pending": {"type": "integer"}}},
                "tasks": {"type": "object", "properties": {"total": {"type": "integer"}, "completed": {"type": "integer"}, "pending": {"type": "integer"}}},
                "vendors": {"type": "object", "properties": {"total": {"type": "integer"}, "booked": {"type": "integer"}}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Wedding Planner API",
	Description:      "Wedding planning API with budgets, guests, vendors, tasks, venues and a progress dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
