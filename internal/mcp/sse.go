package mcp

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SSEContentType = "text/event-stream; charset=utf-8"

	// Event names shared by every streaming push: endpoint and connected
	// form the handshake, message carries JSON-RPC responses, liveness is a
	// comment frame with no event name at all.
	EventEndpoint  = "endpoint"
	EventConnected = "connected"
	EventMessage   = "message"
)

// SSEWriter frames server-sent events onto a gin response. It holds no
// locks itself; the owning Connection serializes all writes.
type SSEWriter struct {
	c *gin.Context
}

// NewSSEWriter commits the stream headers and returns the writer. After
// this the response is an open event stream; nothing else may write to it.
func NewSSEWriter(c *gin.Context) *SSEWriter {
	c.Writer.Header().Set("Content-Type", SSEContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Flush()

	return &SSEWriter{c: c}
}

// WriteEvent
// event: message
// data: {"jsonrpc":"2.0","id":3,"result":{"tools":[]}}
func (w *SSEWriter) WriteEvent(event string, data string) error {
	if _, err := w.c.Writer.WriteString(fmt.Sprintf("event: %s\n", event)); err != nil {
		return err
	}
	if _, err := w.c.Writer.WriteString(fmt.Sprintf("data: %s\n\n", data)); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}

// WritePing
// : ping - 2025-03-16 06:41:51.280928+00:00
func (w *SSEWriter) WritePing() error {
	_, err := w.c.Writer.WriteString(fmt.Sprintf(": ping - %s\n\n", time.Now().Format("2006-01-02 15:04:05.999999-07:00")))
	if err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}

// EndpointData builds the endpoint handshake payload: the URL a client must
// POST subsequent messages to for this connection.
// event: endpoint
// data: /message?sessionId=285d67ee-1c17-40d9-ab03-173d5ff48419
func EndpointData(id string) string {
	return fmt.Sprintf("%s?sessionId=%s", MessagePath, id)
}
