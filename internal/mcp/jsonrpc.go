package mcp

const (
	JsonRPCVersion = "2.0"
)

// Documents: https://modelcontextprotocol.io/docs/concepts/transports

// Request
//
//	{
//		jsonrpc: "2.0",
//		id: number | string | null,
//		method: string,
//		params?: object
//	}
//
// The id is caller-supplied and echoed verbatim in the matching response.
// A null id marks a notification in strict JSON-RPC; this server still
// replies to it, matching the legacy SSE servers current clients grew up
// against. The jsonrpc field is accepted as-is and not validated.
type Request struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// RoutedRequest is the body of an out-of-band message POST: a JSON-RPC
// request plus an optional connectionId naming the target push channel.
//
//	{
//		connectionId?: string,
//		jsonrpc: "2.0",
//		id: number | string | null,
//		method: string,
//		params?: object
//	}
type RoutedRequest struct {
	ConnectionID string `json:"connectionId,omitempty"`
	Request
}

// Response
//
//	{
//		jsonrpc: "2.0",
//		id: number | string | null,
//		result?: object,
//		error?: {
//			code: number,
//			message: string,
//			data?: unknown
//		}
//	}
//
// Exactly one of result and error is set. The id tag carries no omitempty so
// a null request id round-trips as an explicit null.
type Response struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

func NewResponse(id interface{}, result interface{}) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Result:  result,
	}
}
