package mcp

import (
	"encoding/json"
	"sync"
	"testing"
)

// captureWriter records frames in place of a live SSE stream.
type captureWriter struct {
	mu     sync.Mutex
	events []string
	datas  []string
	pings  int
}

func (w *captureWriter) WriteEvent(event string, data string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, event)
	w.datas = append(w.datas, data)
	return nil
}

func (w *captureWriter) WritePing() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pings++
	return nil
}

func (w *captureWriter) last() (string, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.events) == 0 {
		return "", ""
	}
	return w.events[len(w.events)-1], w.datas[len(w.datas)-1]
}

func TestRegistryRegisterGet(t *testing.T) {
	r := NewRegistry()
	conn := NewConnection(&captureWriter{})

	if err := r.Register(conn); err != nil {
		t.Fatalf("Register() err = %v", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}

	got, ok := r.Get(conn.ID)
	if !ok {
		t.Fatalf("Get(%s) not found", conn.ID)
	}
	if got != conn {
		t.Error("Get() returned a different connection")
	}

	// 重复注册同一连接
	if err := r.Register(conn); err == nil {
		t.Error("Register() twice err = nil, want error")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	conn := NewConnection(&captureWriter{})
	r.Register(conn)

	r.Unregister(conn.ID)
	if _, ok := r.Get(conn.ID); ok {
		t.Error("Get() after Unregister() still found")
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}

	// 重复注销是空操作
	r.Unregister(conn.ID)
	r.Unregister("no-such-id")
}

func TestRegistryMostRecent(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.MostRecent(); ok {
		t.Error("MostRecent() on empty registry ok = true")
	}

	a := NewConnection(&captureWriter{})
	b := NewConnection(&captureWriter{})
	r.Register(a)
	r.Register(b)

	got, ok := r.MostRecent()
	if !ok || got.ID != b.ID {
		t.Errorf("MostRecent() = %v, want %s", got, b.ID)
	}

	// 注销最新连接后回退到前一个
	r.Unregister(b.ID)
	got, ok = r.MostRecent()
	if !ok || got.ID != a.ID {
		t.Errorf("MostRecent() after unregister = %v, want %s", got, a.ID)
	}

	c := NewConnection(&captureWriter{})
	r.Register(c)
	got, ok = r.MostRecent()
	if !ok || got.ID != c.ID {
		t.Errorf("MostRecent() after register = %v, want %s", got, c.ID)
	}
}

func TestRegistrySend(t *testing.T) {
	r := NewRegistry()
	w := &captureWriter{}
	conn := NewConnection(w)
	r.Register(conn)

	resp := NewResponse(1, M{"ok": true})
	if err := r.Send(conn.ID, resp); err != nil {
		t.Fatalf("Send() err = %v", err)
	}

	event, data := w.last()
	if event != EventMessage {
		t.Errorf("event = %s, want %s", event, EventMessage)
	}
	want, _ := json.Marshal(resp)
	if data != string(want) {
		t.Errorf("data = %s, want %s", data, want)
	}

	// 空 id 送往最近连接
	if err := r.Send("", NewResponse(2, struct{}{})); err != nil {
		t.Errorf("Send(\"\") err = %v", err)
	}

	if err := r.Send("no-such-id", resp); err != ErrNoConnection {
		t.Errorf("Send(unknown) err = %v, want ErrNoConnection", err)
	}
}

func TestRegistrySendNoConnections(t *testing.T) {
	r := NewRegistry()
	if err := r.Send("", NewResponse(1, struct{}{})); err != ErrNoConnection {
		t.Errorf("Send() on empty registry err = %v, want ErrNoConnection", err)
	}
}

func TestConnectionClose(t *testing.T) {
	w := &captureWriter{}
	conn := NewConnection(w)

	if err := conn.SendEvent(EventConnected, "{}"); err != nil {
		t.Fatalf("SendEvent() err = %v", err)
	}
	if err := conn.Ping(); err != nil {
		t.Fatalf("Ping() err = %v", err)
	}

	conn.Close()
	conn.Close() // 幂等

	select {
	case <-conn.Done():
	default:
		t.Error("Done() not closed after Close()")
	}

	if err := conn.SendEvent(EventMessage, "{}"); err != ErrConnectionClosed {
		t.Errorf("SendEvent() after Close err = %v, want ErrConnectionClosed", err)
	}
	if err := conn.Ping(); err != ErrConnectionClosed {
		t.Errorf("Ping() after Close err = %v, want ErrConnectionClosed", err)
	}
}

func TestRegistryConcurrency(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			conn := NewConnection(&captureWriter{})
			if err := r.Register(conn); err != nil {
				t.Errorf("Register() err = %v", err)
				return
			}
			r.Send(conn.ID, NewResponse(n, M{"n": n}))
			r.Send("", NewResponse(n, M{"n": n}))
			r.MostRecent()
			conn.Close()
			r.Unregister(conn.ID)
		}(i)
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}

func TestConnectionIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		conn := NewConnection(&captureWriter{})
		if conn.ID == "" {
			t.Fatal("NewConnection() empty id")
		}
		if seen[conn.ID] {
			t.Fatalf("duplicate connection id %s", conn.ID)
		}
		seen[conn.ID] = true
	}
}
