package mcp

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StreamWriter is the framed transport beneath a Connection. The SSE writer
// is the only production implementation; tests substitute buffers.
type StreamWriter interface {
	WriteEvent(event string, data string) error
	WritePing() error
}

// Connection is one open push channel. The registry owns it from Register
// until Unregister; the transport link underneath is a weak reference, so a
// dead link surfaces as a write error rather than a dangling handle.
type Connection struct {
	ID        string
	CreatedAt time.Time

	w      StreamWriter
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewConnection(w StreamWriter) *Connection {
	return &Connection{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		w:         w,
		done:      make(chan struct{}),
	}
}

// Send pushes one JSON-RPC payload as a message event. Safe for concurrent
// use; frames never interleave because every write holds the connection
// mutex.
func (c *Connection) Send(p []byte) error {
	return c.SendEvent(EventMessage, string(p))
}

// SendEvent pushes one named event frame.
func (c *Connection) SendEvent(event string, data string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}
	return c.w.WriteEvent(event, data)
}

// Ping pushes a liveness frame.
func (c *Connection) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}
	return c.w.WritePing()
}

// Close marks the connection dead. Idempotent. Because it takes the write
// mutex, any in-flight write finishes first and no new write can start once
// Close returns; the ping loop observes Done and stops in the same step.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}

// Done is closed when the connection is.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Registry maps connection ids to open push channels so that out-of-band
// requests can address them. Adapters register on stream open and
// unregister on close; the dispatch path only reads.
type Registry struct {
	mu    sync.Mutex
	conns map[string]*Connection
	order []string
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Connection),
	}
}

// Register inserts conn. Ids are uuids, so a duplicate means the caller is
// reusing a Connection value; that is rejected rather than papered over.
func (r *Registry) Register(conn *Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[conn.ID]; ok {
		return fmt.Errorf("connection %s already registered", conn.ID)
	}
	r.conns[conn.ID] = conn
	r.order = append(r.order, conn.ID)
	return nil
}

// Unregister removes id if present. Removing an unknown or already-removed
// id is a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conns[id]; !ok {
		return
	}
	delete(r.conns, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Get(id string) (*Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[id]
	return conn, ok
}

// MostRecent returns the last-registered connection still present.
// Insertion order is the only ordering tracked; use never updates it.
func (r *Registry) MostRecent() (*Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return nil, false
	}
	id := r.order[len(r.order)-1]
	return r.conns[id], true
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Send marshals msg and pushes it to the connection named by id, or to the
// most recent connection when id is empty. Unknown ids report
// ErrNoConnection, closed connections ErrConnectionClosed.
func (r *Registry) Send(id string, msg interface{}) error {
	var conn *Connection
	var ok bool
	if id == "" {
		conn, ok = r.MostRecent()
	} else {
		conn, ok = r.Get(id)
	}
	if !ok {
		return ErrNoConnection
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Send(b)
}
