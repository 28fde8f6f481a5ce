package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Catalog is the tool surface the dispatcher serves. ListTools must return
// a stable order. CallTool reports unknown names and bad arguments as
// *Error faults; anything else is treated as an internal fault.
type Catalog interface {
	ListTools() []Tool
	CallTool(name string, arguments M) (*ToolsCallResponse, error)
}

// Dispatcher maps one inbound JSON-RPC request to exactly one response.
// Both transport adapters share a single instance, so the method table and
// its quirks cannot drift between them.
type Dispatcher struct {
	catalog Catalog
	server  ServerInfo
}

func NewDispatcher(catalog Catalog, server ServerInfo) *Dispatcher {
	return &Dispatcher{
		catalog: catalog,
		server:  server,
	}
}

// Dispatch never panics and never returns nil: every failure, including a
// panicking tool handler, becomes a JSON-RPC error response with the
// request id echoed. Fault detail stays in the log.
func (d *Dispatcher) Dispatch(req *Request) (resp *Response) {
	if req == nil {
		req = &Request{}
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("method", req.Method).Msg("dispatch panic")
			resp = ErrInternalError.Response(req.ID)
		}
	}()

	switch req.Method {
	case MethodInitialize:
		return d.initialize(req)
	case MethodInitialized, MethodNotificationsInitialized:
		// Strict JSON-RPC would stay silent on a notification. The servers
		// this one replaces replied anyway, and clients tolerate it, so the
		// reply stays.
		return NewResponse(req.ID, struct{}{})
	case MethodPing:
		return NewResponse(req.ID, struct{}{})
	case MethodToolsList:
		return NewResponse(req.ID, ToolsListResponse{Tools: d.catalog.ListTools()})
	case MethodToolsCall:
		return d.toolsCall(req)
	default:
		log.Debug().Str("method", req.Method).Msg("method not found")
		return ErrMethodNotFound.Response(req.ID)
	}
}

func (d *Dispatcher) initialize(req *Request) *Response {
	if req.Params != nil {
		initReq, err := parseParams[InitializeRequest](req.Params)
		if err == nil && initReq.ClientInfo != nil {
			log.Debug().
				Str("client", initReq.ClientInfo.Name).
				Str("version", initReq.ClientInfo.Version).
				Str("protocol", initReq.ProtocolVersion).
				Msg("initialize")
		}
	}

	return NewResponse(req.ID, InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    DefaultCapabilities,
		ServerInfo:      d.server,
	})
}

func (d *Dispatcher) toolsCall(req *Request) *Response {
	callReq, err := parseParams[ToolsCallRequest](req.Params)
	if err != nil {
		return NewErrorResponse(req.ID, CodeInvalidParams, fmt.Errorf("invalid tools/call params: %v", err))
	}
	if callReq.Name == "" {
		return NewErrorResponse(req.ID, CodeInvalidParams, errors.New("missing tool name"))
	}

	result, err := d.catalog.CallTool(callReq.Name, callReq.Arguments)
	if err != nil {
		if e, ok := AsError(err); ok {
			return e.Response(req.ID)
		}
		log.Err(err).Str("tool", callReq.Name).Msg("tool call failed")
		return ErrInternalError.Response(req.ID)
	}
	return NewResponse(req.ID, result)
}

// parseParams re-encodes loosely decoded params into the target shape.
func parseParams[T any](params interface{}) (*T, error) {
	if params == nil {
		return nil, errors.New("params is nil")
	}

	jsonData, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode params: %v", err)
	}

	var result T
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("decode params: %v", err)
	}

	return &result, nil
}
