package mcp

import (
	"errors"
	"fmt"
)

// enum ErrorCode {
// 	// Standard JSON-RPC error codes
// 	ParseError = -32700,
// 	InvalidRequest = -32600,
// 	MethodNotFound = -32601,
// 	InvalidParams = -32602,
// 	InternalError = -32603
// }

const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is a JSON-RPC error object. It doubles as a Go error so the catalog
// and the registry can hand protocol-shaped failures straight back to the
// dispatcher.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var (
	ErrParseError     = &Error{Code: CodeParseError, Message: "Parse error"}
	ErrInvalidRequest = &Error{Code: CodeInvalidRequest, Message: "Invalid Request"}
	ErrMethodNotFound = &Error{Code: CodeMethodNotFound, Message: "Method not found"}
	ErrInvalidParams  = &Error{Code: CodeInvalidParams, Message: "Invalid params"}
	ErrInternalError  = &Error{Code: CodeInternalError, Message: "Internal error"}

	// Transport-level failures sit outside the -32xxx space and reuse
	// HTTP status codes. They are reported on the triggering request.
	ErrInvalidBody      = &Error{Code: 400, Message: "Invalid request body"}
	ErrNoConnection     = &Error{Code: 404, Message: "No active connection"}
	ErrConnectionClosed = &Error{Code: 404, Message: "Connection closed"}
	ErrTooManyRequests  = &Error{Code: 429, Message: "Too many requests"}
)

// NewError builds a protocol error with a formatted message.
func NewError(code int, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// JsonRPC wraps the error in a bare response envelope, for transport-level
// replies that have no request id to echo.
func (e *Error) JsonRPC() Response {
	return Response{
		JsonRPC: JsonRPCVersion,
		Error:   e,
	}
}

// Response wraps the error in a response echoing the given request id.
func (e *Error) Response(id interface{}) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Error:   e,
	}
}

func NewErrorResponse(id interface{}, code int, err error) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: err.Error(),
		},
	}
}

// AsError extracts a protocol-shaped error from err, unwrapping as needed.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
