package feed

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Renderers are local tools served from anywhere.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeHTTP upgrades the request and attaches a renderer. The first frame
// it receives is a full snapshot.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("failed to upgrade websocket connection")
		return
	}

	client := newClient(h, conn)
	if !h.attach(client) {
		conn.Close()
		return
	}

	snap := h.ctrl.Snapshot()
	h.send(client, Message{Type: "snapshot", Snapshot: &snap})

	go client.writePump()
	go client.readPump()
}

// ListenAndServe runs the hub and an HTTP server on addr with the feed at
// /ws until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{Addr: addr, Handler: mux}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.WithField("addr", addr).Info("renderer feed listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
