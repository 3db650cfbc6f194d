package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"seismicgrid/internal/seismic"
)

// controlMessage is what clients send to steer the simulation. Empty fields
// are ignored.
type controlMessage struct {
	Model  string     `json:"model,omitempty"`
	Marker *pointJSON `json:"marker,omitempty"`
	Speed  float64    `json:"speed,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type modelInfo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// stateMessage is sent as JSON on connect ("hello") and after every model or
// marker change ("state").
type stateMessage struct {
	Type   string            `json:"type"`
	Canvas seismic.Canvas    `json:"canvas"`
	Region seismic.Region    `json:"region"`
	Params seismic.Params    `json:"params"`
	Model  string            `json:"model"`
	Marker seismic.MarkerRef `json:"marker"`
	Speed  float64           `json:"speed"`
	Models []modelInfo       `json:"models,omitempty"`
}

type outbound struct {
	kind int
	data []byte
}

type wsClient struct {
	conn *websocket.Conn
	send chan outbound
}

// server streams the scene to websocket clients. A single goroutine (run)
// owns the controller and the client set; connections talk to it over
// channels, so control messages only ever apply between ticks.
type server struct {
	ctrl     *controller
	upgrader websocket.Upgrader

	register   chan *wsClient
	unregister chan *wsClient
	commands   chan controlMessage
	done       chan struct{}

	clients map[*wsClient]struct{}
}

func newServer(ctrl *controller) *server {
	return &server{
		ctrl: ctrl,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		commands:   make(chan controlMessage, wsClientQueue),
		done:       make(chan struct{}),
		clients:    make(map[*wsClient]struct{}),
	}
}

// handler returns the HTTP routes served in serve mode.
func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// run ticks the simulation at the configured rate until ctx is cancelled.
func (s *server) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(time.Second / time.Duration(s.ctrl.scene.Params().FPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			for c := range s.clients {
				delete(s.clients, c)
				close(c.send)
			}
			return
		case c := <-s.register:
			s.clients[c] = struct{}{}
			s.sendState(c, "hello")
		case c := <-s.unregister:
			if _, ok := s.clients[c]; ok {
				delete(s.clients, c)
				close(c.send)
			}
		case msg := <-s.commands:
			if s.apply(msg) {
				for c := range s.clients {
					s.sendState(c, "state")
				}
			}
		case <-ticker.C:
			s.ctrl.tick()
			s.broadcast(outbound{kind: websocket.BinaryMessage, data: encodeFrame(nil, s.ctrl.scene)})
		}
	}
}

// apply executes a control message and reports whether visible state changed.
func (s *server) apply(msg controlMessage) bool {
	changed := false
	if msg.Model != "" {
		s.ctrl.selectModel(msg.Model)
		changed = true
	}
	if msg.Marker != nil {
		s.ctrl.retarget(msg.Marker.X, msg.Marker.Y)
		changed = true
	}
	if msg.Speed != 0 {
		s.ctrl.setSpeed(msg.Speed)
		changed = true
	}
	return changed
}

func (s *server) state(kind string) stateMessage {
	sc := s.ctrl.scene
	msg := stateMessage{
		Type:   kind,
		Canvas: sc.Canvas(),
		Region: sc.Grid().Region(),
		Params: sc.Params(),
		Model:  sc.Model().ID(),
		Marker: sc.Marker(),
		Speed:  s.ctrl.speed,
	}
	if kind == "hello" {
		for _, f := range seismic.Fields() {
			msg.Models = append(msg.Models, modelInfo{ID: f.ID(), Title: f.Title(), Summary: f.Summary()})
		}
	}
	return msg
}

func (s *server) sendState(c *wsClient, kind string) {
	data, err := json.Marshal(s.state(kind))
	if err != nil {
		log.Printf("encoding %s message: %v", kind, err)
		return
	}
	s.enqueue(c, outbound{kind: websocket.TextMessage, data: data})
}

func (s *server) broadcast(m outbound) {
	for c := range s.clients {
		s.enqueue(c, m)
	}
}

// enqueue drops the message for clients that are not keeping up.
func (s *server) enqueue(c *wsClient, m outbound) {
	select {
	case c.send <- m:
	default:
		log.Printf("websocket client %s lagging, dropping message", c.conn.RemoteAddr())
	}
}

func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	c := &wsClient{conn: conn, send: make(chan outbound, wsClientQueue)}
	select {
	case s.register <- c:
	case <-s.done:
		conn.Close()
		return
	}
	go c.writeLoop()
	s.readLoop(c)
}

// readLoop forwards control messages until the connection fails.
func (s *server) readLoop(c *wsClient) {
	defer func() {
		select {
		case s.unregister <- c:
		case <-s.done:
		}
	}()
	for {
		var msg controlMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Println("WebSocket read error:", err)
			}
			return
		}
		select {
		case s.commands <- msg:
		case <-s.done:
			return
		}
	}
}

// writeLoop drains the client queue and closes the connection once the
// queue is closed or a write fails.
func (c *wsClient) writeLoop() {
	defer c.conn.Close()
	for m := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.conn.WriteMessage(m.kind, m.data); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// runServer serves the websocket stream on addr until ctx is cancelled.
func runServer(ctx context.Context, ctrl *controller, addr string) error {
	s := newServer(ctrl)
	srv := &http.Server{Addr: addr, Handler: s.handler()}
	go s.run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Printf("Streaming %s on ws://%s/ws", ctrl.scene.Model().Title(), addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
