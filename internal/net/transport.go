package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// viewer is one connected live-view client. send holds at most one frame:
// the newest one the viewer has not been sent yet.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// offer replaces any unsent frame with data. Callers hold the hub lock, so
// nothing else sends on v.send concurrently.
func (v *viewer) offer(data []byte) {
	select {
	case <-v.send:
	default:
	}
	select {
	case v.send <- data:
	default:
	}
}

// Hub fans rendered frames out to every connected viewer. Publish never
// blocks on a slow viewer; a viewer that falls behind skips intermediate
// frames but always ends up with the latest one.
type Hub struct {
	viewers  map[*viewer]bool
	last     []byte
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		viewers: make(map[*viewer]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Publish sends f to all viewers and keeps it for viewers that join later.
func (h *Hub) Publish(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding frame %d: %w", f.Seq, err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for v := range h.viewers {
		v.offer(data)
	}
	return nil
}

// ServeHTTP upgrades the request to a websocket and streams frames to it
// until the viewer disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HUB] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, 1)}
	h.add(v)
	go h.writeLoop(v)

	// Viewers never send anything meaningful; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(v)
}

func (h *Hub) add(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewers[v] = true
	if h.last != nil {
		v.offer(h.last)
	}
	log.Printf("[HUB] Viewer connected: %s", v.conn.RemoteAddr())
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.viewers[v] {
		return
	}
	delete(h.viewers, v)
	close(v.send)
	log.Printf("[HUB] Viewer disconnected: %s", v.conn.RemoteAddr())
}

func (h *Hub) writeLoop(v *viewer) {
	defer v.conn.Close()
	for data := range v.send {
		if err := v.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("[HUB] Setting write deadline for %s: %v", v.conn.RemoteAddr(), err)
			return
		}
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[HUB] Error sending to %s: %v", v.conn.RemoteAddr(), err)
			return
		}
	}
	closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := v.conn.WriteMessage(websocket.CloseMessage, closing); err != nil {
		log.Printf("[HUB] Error closing %s: %v", v.conn.RemoteAddr(), err)
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		delete(h.viewers, v)
		close(v.send)
	}
}

// Serve runs the live-view endpoint on port until ctx is done.
func Serve(ctx context.Context, port int, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[HUB] Shutting down live view: %v", err)
		}
	}()

	log.Printf("[HUB] Live view listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("live view server: %w", err)
	}
	return nil
}

// Watch connects to the live view at addr (host:port) and calls onFrame for
// every frame newer than the last one seen. It returns when the connection
// ends or ctx is done.
func Watch(ctx context.Context, addr string, onFrame func(Frame)) error {
	url := "ws://" + addr + "/ws"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	var site string
	var seq uint64
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("reading frame: %w", err)
		}
		if f.Site == site && f.Seq <= seq {
			continue
		}
		site, seq = f.Site, f.Seq
		onFrame(f)
	}
}
