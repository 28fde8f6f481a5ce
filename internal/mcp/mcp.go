package mcp

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	SSEPath     = "/sse"
	MessagePath = "/message"
	// Some clients pluralize the message path; both spellings are routed.
	MessagesPath = "/messages"
	MCPPath      = "/mcp"

	DefaultPingInterval = 30 * time.Second
	DefaultQueueSize    = 1024
)

// MCP binds the shared dispatcher and the connection registry to their HTTP
// transports: a synchronous endpoint, a streaming endpoint, and the
// out-of-band message endpoint that routes into open streams.
type MCP struct {
	Registry   *Registry
	Dispatcher *Dispatcher

	// ProcessChan queues routed messages for the dispatch worker. Bounded:
	// a full queue pushes back on the triggering request instead of the
	// stream.
	ProcessChan chan ProcessCtx

	pingInterval time.Duration
}

// ProcessCtx is one routed message: the resolved target connection and the
// request to dispatch for it.
type ProcessCtx struct {
	ConnID  string
	Request *Request
}

func NewMCP(dispatcher *Dispatcher, pingInterval time.Duration, queueSize int) *MCP {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &MCP{
		Registry:     NewRegistry(),
		Dispatcher:   dispatcher,
		ProcessChan:  make(chan ProcessCtx, queueSize),
		pingInterval: pingInterval,
	}
}

// HandleSSE opens a push channel: commit stream headers, register the
// connection, announce it, then hold the request open until the peer goes
// away. Teardown is deferred from registration, so every exit path closes
// and unregisters exactly once; Close is idempotent and stops the ping
// loop before the registry entry disappears.
func (m *MCP) HandleSSE(c *gin.Context) {
	w := NewSSEWriter(c)
	conn := NewConnection(w)
	if err := m.Registry.Register(conn); err != nil {
		log.Err(err).Msg("register connection")
		c.Status(http.StatusInternalServerError)
		return
	}
	defer func() {
		conn.Close()
		m.Registry.Unregister(conn.ID)
		log.Debug().Str("connection", conn.ID).Msg("stream closed")
	}()
	log.Debug().Str("connection", conn.ID).Msg("stream opened")

	if err := conn.SendEvent(EventEndpoint, EndpointData(conn.ID)); err != nil {
		log.Debug().Err(err).Str("connection", conn.ID).Msg("endpoint event")
	}
	notice, _ := json.Marshal(M{"connectionId": conn.ID})
	if err := conn.SendEvent(EventConnected, string(notice)); err != nil {
		log.Debug().Err(err).Str("connection", conn.ID).Msg("connected event")
	}

	go m.ping(conn)

	c.Stream(func(w io.Writer) bool {
		<-c.Request.Context().Done()
		return false
	})
}

func (m *MCP) ping(conn *Connection) {
	t := time.NewTicker(m.pingInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if err := conn.Ping(); err != nil {
				return
			}
		case <-conn.Done():
			return
		}
	}
}

// HandleMessages accepts an out-of-band JSON-RPC request, resolves its
// target channel, and queues it for dispatch. The caller gets a bare
// acknowledgment; the dispatch result goes down the stream.
func (m *MCP) HandleMessages(c *gin.Context) {
	var req RoutedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrInvalidBody.JsonRPC())
		c.Abort()
		return
	}

	// A channel id arrives several ways in the wild: connectionId in the
	// body or query, session_id (official python SDK), sessionId (MCP
	// inspector). https://github.com/modelcontextprotocol/python-sdk/blob/c897868/src/mcp/server/sse.py#L98
	// https://github.com/modelcontextprotocol/inspector/blob/aeaf32f/server/src/index.ts#L157
	id := req.ConnectionID
	if id == "" {
		id = c.Query("connectionId")
	}
	if id == "" {
		id = c.Query("sessionId")
	}
	if id == "" {
		id = c.Query("session_id")
	}

	if id == "" {
		// Most-recent fallback. Racy when several streams are open at
		// once; known limitation, callers that care pass an explicit id.
		conn, ok := m.Registry.MostRecent()
		if !ok {
			c.JSON(http.StatusNotFound, ErrNoConnection.JsonRPC())
			c.Abort()
			return
		}
		id = conn.ID
	} else if _, ok := m.Registry.Get(id); !ok {
		c.JSON(http.StatusNotFound, ErrNoConnection.JsonRPC())
		c.Abort()
		return
	}

	log.Debug().Str("connection", id).Str("method", req.Method).Msg("message routed")
	select {
	case m.ProcessChan <- ProcessCtx{ConnID: id, Request: &req.Request}:
	default:
		c.JSON(http.StatusTooManyRequests, ErrTooManyRequests.JsonRPC())
		c.Abort()
		return
	}

	c.String(http.StatusAccepted, "Accepted")
}

// HandleRPC is the synchronous transport: one request in, one response out.
// Bodies that fail to decode dispatch as the zero request so the error
// comes back dispatcher-shaped instead of as a transport rejection.
func (m *MCP) HandleRPC(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("undecodable rpc body")
		req = Request{}
	}
	c.JSON(http.StatusOK, m.Dispatcher.Dispatch(&req))
}

func (m *MCP) Close() {
	close(m.ProcessChan)
}
