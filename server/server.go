package server

import (
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-wireworld/utils"
)

//go:embed static/index.html
var indexHTML []byte

const shutdownTimeout = 5 * time.Second

// Server serves the browser renderer and its WebSocket endpoint.
type Server struct {
	session  *Session
	hub      *Hub
	logger   *utils.Logger
	upgrader websocket.Upgrader
}

func NewServer(session *Session, hub *Hub, log *utils.Logger) *Server {
	return &Server{
		session: session,
		hub:     hub,
		logger:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Handler mounts the page on / and the WebSocket on /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(s.session.Hello()); err != nil {
		s.logger.Warn("Failed to greet client: %v", err)
		conn.Close()
		return
	}

	client := NewClient(s.hub, s.session, conn)
	s.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("Serving on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdownCtx), "[ListenAndServe] shutdown failed")
	case err := <-errCh:
		return errors.Wrapf(err, "[ListenAndServe] failed to serve on %s", addr)
	}
}
