package ioweb

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

type revealQuery struct {
	DelayMs int `validate:"gte=0,lte=60000"`
}

// reveal streams time-series frames, one JSON message per point, and
// closes the connection after the last one. The optional delay_ms query
// parameter overrides the configured pause.
func (s *Server) reveal(w http.ResponseWriter, r *http.Request) {
	q := revealQuery{DelayMs: int(s.delay / time.Millisecond)}
	if v := r.URL.Query().Get("delay_ms"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, "delay_ms must be an integer")
			return
		}
		q.DelayMs = d
	}
	if err := s.validate.Struct(q); err != nil {
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	s.metrics.wsClients.Inc()
	defer s.metrics.wsClients.Dec()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readLoop(conn, cancel)

	delay := time.Duration(q.DelayMs) * time.Millisecond
	for f := range s.dash.TimeSeries.Reveal() {
		select {
		case <-ctx.Done():
			slog.Debug("Reveal client left", "step", f.Step)
			return
		case <-time.After(delay):
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(f); err != nil {
			slog.Debug("Reveal stream interrupted", "step", f.Step, "error", err)
			return
		}
		s.metrics.revealFrames.Inc()
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

// readLoop drains client messages and cancels the stream when the client
// closes the connection or goes away. Control frames are handled inside
// ReadMessage.
func readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("Reveal client closed unexpectedly", "error", err)
			}
			return
		}
	}
}
