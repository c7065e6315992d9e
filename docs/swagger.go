// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/check-db": {
            "get": {
                "summary": "Database probe: user count and usernames",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/login": {
            "post": {
                "summary": "Login with username and password",
                "responses": {
                    "200": {"description": "Profile with role"},
                    "400": {"description": "Bad credentials"}
                }
            }
        },
        "/board": {
            "get": {
                "summary": "Full board: columns in position order with nested tasks",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks": {
            "post": {
                "summary": "Create a task in a column",
                "responses": {
                    "201": {"description": "Created task"},
                    "400": {"description": "Unknown column"}
                }
            }
        },
        "/tasks/{task_id}": {
            "put": {
                "summary": "Partially update a task; changing column_id moves it",
                "responses": {
                    "200": {"description": "Updated task"},
                    "404": {"description": "Unknown task"}
                }
            }
        },
        "/clear-all": {
            "delete": {
                "summary": "Delete every task and column",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "summary": "board_updated server-sent event stream",
                "responses": {"200": {"description": "event stream"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanban Live API",
	Description:      "Real-time Kanban board backend: columns, tasks and a board_updated event stream.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
