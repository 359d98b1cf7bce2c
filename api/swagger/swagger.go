package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AuthCore",
        "description": "OAuth2 authorization server core (RFC 6749 / 7009 / 7662)",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "OAuth", "description": "Token issuance, revocation and introspection"},
        {"name": "Identity", "description": "Bearer-protected resource owner info"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/oauth/token": {
            "post": {
                "tags": ["OAuth"],
                "summary": "Issue or refresh a token pair",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "grant_type", "in": "formData", "type": "string", "required": true, "enum": ["password", "refresh_token"]},
                    {"name": "username", "in": "formData", "type": "string"},
                    {"name": "password", "in": "formData", "type": "string"},
                    {"name": "refresh_token", "in": "formData", "type": "string"},
                    {"name": "scope", "in": "formData", "type": "string"},
                    {"name": "client_id", "in": "formData", "type": "string"},
                    {"name": "client_secret", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Protocol error", "schema": {"$ref": "#/definitions/OAuthError"}},
                    "401": {"description": "Client authentication failed", "schema": {"$ref": "#/definitions/OAuthError"}}
                }
            }
        },
        "/oauth/revoke": {
            "post": {
                "tags": ["OAuth"],
                "summary": "Revoke a token",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "token", "in": "formData", "type": "string", "required": true},
                    {"name": "token_type_hint", "in": "formData", "type": "string", "enum": ["access_token", "refresh_token"]},
                    {"name": "client_id", "in": "formData", "type": "string"},
                    {"name": "client_secret", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RevokeResponse"}},
                    "400": {"description": "Protocol error", "schema": {"$ref": "#/definitions/OAuthError"}},
                    "401": {"description": "Client authentication failed", "schema": {"$ref": "#/definitions/OAuthError"}}
                }
            }
        },
        "/oauth/introspect": {
            "post": {
                "tags": ["OAuth"],
                "summary": "Introspect a token",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "token", "in": "formData", "type": "string", "required": true},
                    {"name": "token_type_hint", "in": "formData", "type": "string", "enum": ["access_token", "refresh_token"]},
                    {"name": "client_id", "in": "formData", "type": "string"},
                    {"name": "client_secret", "in": "formData", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Introspection"}},
                    "401": {"description": "Client authentication failed", "schema": {"$ref": "#/definitions/OAuthError"}}
                }
            }
        },
        "/userinfo": {
            "get": {
                "tags": ["Identity"],
                "summary": "Resource owner profile for the presented bearer token",
                "security": [{"BearerToken": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserInfo"}},
                    "401": {"description": "Missing, expired or revoked token"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_in": {"type": "integer"},
                "refresh_token": {"type": "string"},
                "scope": {"type": "string"},
                "user": {"$ref": "#/definitions/UserInfo"}
            }
        },
        "RevokeResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "Introspection": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "scope": {"type": "string"},
                "client_id": {"type": "string"},
                "username": {"type": "string"},
                "token_type": {"type": "string"},
                "exp": {"type": "integer"},
                "iat": {"type": "integer"},
                "sub": {"type": "string"}
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"}
            }
        },
        "OAuthError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
