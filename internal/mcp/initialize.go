package mcp

const (
	MethodInitialize  = "initialize"
	MethodInitialized = "initialized"
	MethodPing        = "ping"

	// Current MCP clients send the initialized notification under a
	// namespaced method name; both spellings are answered.
	MethodNotificationsInitialized = "notifications/initialized"

	ProtocolVersion = "2024-11-05"
)

//	{
//		"method": "initialize",
//		"params": {
//		  "protocolVersion": "2024-11-05",
//		  "capabilities": {
//			"sampling": {},
//			"roots": {
//			  "listChanged": true
//			}
//		  },
//		  "clientInfo": {
//			"name": "mcp-inspector",
//			"version": "0.0.1"
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 0
//	  }
type InitializeRequest struct {
	ProtocolVersion string      `json:"protocolVersion"`
	Capabilities    M           `json:"capabilities"`
	ClientInfo      *ClientInfo `json:"clientInfo"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 0,
//		"result": {
//		  "protocolVersion": "2024-11-05",
//		  "capabilities": {
//			"experimental": {},
//			"logging": {},
//			"tools": {
//			  "listChanged": false
//			}
//		  },
//		  "serverInfo": {
//			"name": "mcpcalc",
//			"version": "v0.1.0"
//		  }
//		}
//	  }
type InitializeResponse struct {
	ProtocolVersion string     `json:"protocolVersion"`
	Capabilities    M          `json:"capabilities"`
	ServerInfo      ServerInfo `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DefaultCapabilities only advertises surfaces this server actually answers:
// tools, plus the logging and experimental stubs clients probe for.
var DefaultCapabilities = M{
	"experimental": M{},
	"logging":      M{},
	"tools":        M{"listChanged": false},
}
