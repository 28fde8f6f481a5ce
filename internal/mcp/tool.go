package mcp

// Document: https://modelcontextprotocol.io/docs/concepts/tools

import (
	"github.com/google/jsonschema-go/jsonschema"
)

const (
	// Client => Server
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

type M map[string]interface{}

// Tool
//
//	{
//		name: string;          // Unique identifier for the tool
//		description?: string;  // Human-readable description
//		inputSchema: {         // JSON Schema for the tool's parameters
//			type: "object",
//			properties: { ... },
//			required: [ ... ]
//		}
//	}
//
// Descriptors are immutable once the catalog is built.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 1,
//		"result": {
//		  "tools": [
//			{
//			  "name": "add",
//			  "description": "Add two numbers",
//			  "inputSchema": {
//				"type": "object",
//				"properties": {
//				  "a": { "type": "number" },
//				  "b": { "type": "number" }
//				},
//				"required": ["a", "b"]
//			  }
//			}
//		  ]
//		}
//	  }
type ToolsListResponse struct {
	Tools []Tool `json:"tools"`
}

//	{
//		"method": "tools/call",
//		"params": {
//		  "name": "calculate",
//		  "arguments": {
//			"operation": "multiply",
//			"a": 4,
//			"b": 7
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 3
//	  }
type ToolsCallRequest struct {
	Name      string `json:"name"`
	Arguments M      `json:"arguments"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 3,
//		"result": {
//		  "content": [
//			{
//			  "type": "text",
//			  "text": "28"
//			}
//		  ],
//		  "isError": false
//		}
//	  }
type ToolsCallResponse struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextResult wraps plain text in the single-block result shape every tool
// here produces.
func NewTextResult(text string) *ToolsCallResponse {
	return &ToolsCallResponse{
		Content: []Content{
			{Type: "text", Text: text},
		},
	}
}
