// Package docs registers the Swagger specification with swag so that
// echo-swagger can serve it. Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@snoonu.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/campaigns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Campaigns"],
                "summary": "List available campaigns",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/campaigns/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Campaigns"],
                "summary": "Get a campaign",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "List enrollments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Enroll in a campaign",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Get an enrollment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Remove an enrollment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}/upload": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Upload a video",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Submit a video for review",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}/advance": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Advance an enrollment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Approve an enrollment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/enrollments/{id}/reject": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Enrollments"],
                "summary": "Reject an enrollment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/analytics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Analytics"],
                "summary": "Get the analytics report",
                "parameters": [
                    {"type": "string", "name": "range", "in": "query", "enum": ["daily", "weekly", "monthly", "yearly"]},
                    {"type": "string", "name": "merchant", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leaderboard/collaborators": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leaderboard"],
                "summary": "List top collaborators",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leaderboard/collaborators/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leaderboard"],
                "summary": "Get a collaborator profile",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/leaderboard/merchants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leaderboard"],
                "summary": "List merchant leaderboard",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/leaderboard/daily-winners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leaderboard"],
                "summary": "List today's winners",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tiers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tiers"],
                "summary": "List tier definitions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tiers/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tiers"],
                "summary": "Get the collaborator's tier standing",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List event categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List event date filters",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CollabHub API",
	Description:      "Influencer collaboration program: campaigns, enrollments, analytics and leaderboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
