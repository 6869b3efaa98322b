// Package docs holds the swagger spec served under /swagger. Regenerate with
// `swag init -g cmd/wealth_backend/main.go -o cmd/docs` after changing handler annotations.
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
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {}
            }
        },
        "/accounts": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Create a new account",
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List accounts",
                "responses": {}
            }
        },
        "/accounts/{accountID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account by ID",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Update an account",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Delete an account",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/balance": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account balance",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/timeseries": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account timeseries",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/budget-summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get budget rollups of an account",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/entries": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Post a ledger entry",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "List the entries of an account",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/entries/{entryID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Get one entry",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Update a plain entry",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Delete an entry",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "entryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/accounts/{accountID}/import-csv": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entries"
                ],
                "summary": "Import entries from CSV",
                "parameters": [
                    {
                        "type": "string",
                        "name": "accountID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/transfers": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transfers"
                ],
                "summary": "Move money between two accounts",
                "responses": {}
            }
        },
        "/transfers/{transferID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transfers"
                ],
                "summary": "Get both legs of a transfer",
                "parameters": [
                    {
                        "type": "string",
                        "name": "transferID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transfers"
                ],
                "summary": "Update both legs of a transfer",
                "parameters": [
                    {
                        "type": "string",
                        "name": "transferID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transfers"
                ],
                "summary": "Delete a transfer",
                "parameters": [
                    {
                        "type": "string",
                        "name": "transferID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "Open a portfolio",
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "List portfolios",
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "Get a portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "Delete a portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}/snapshots": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "Record a portfolio valuation",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "List the snapshots of a portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}/snapshots/{snapshotID}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "portfolios"
                ],
                "summary": "Delete a snapshot",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "snapshotID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}/trades": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "Record a trade",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "List the trades of a portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}/trades/{tradeID}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "Update a trade",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "tradeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "Delete a trade",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "tradeID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/portfolios/{portfolioID}/positions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "Get the net positions of a portfolio",
                "parameters": [
                    {
                        "type": "string",
                        "name": "portfolioID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/instruments": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instruments"
                ],
                "summary": "Register an instrument",
                "responses": {}
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instruments"
                ],
                "summary": "List instruments",
                "responses": {}
            }
        },
        "/instruments/{symbol}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instruments"
                ],
                "summary": "Delete an instrument",
                "parameters": [
                    {
                        "type": "string",
                        "name": "symbol",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {}
            }
        },
        "/net-worth": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "net-worth"
                ],
                "summary": "Get net worth",
                "responses": {}
            }
        },
        "/net-worth/grouped": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "net-worth"
                ],
                "summary": "Get net worth per account type",
                "responses": {}
            }
        },
        "/net-worth/timeseries": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "net-worth"
                ],
                "summary": "Get a net worth timeseries",
                "responses": {}
            }
        },
        "/net-worth/full": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "net-worth"
                ],
                "summary": "Get net worth including portfolio valuations",
                "responses": {}
            }
        },
        "/net-worth/full/timeseries": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "net-worth"
                ],
                "summary": "Get a net worth timeseries including portfolio valuations",
                "responses": {}
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
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Wealth Tracker API",
	Description:      "Personal ledger: accounts, entries, transfers, portfolios, trades and net worth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
