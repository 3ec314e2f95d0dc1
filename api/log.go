package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// streamLog upgrades to a websocket and pushes every log line as a json text frame.
func (s *APIServer) streamLog(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		s.logger.ErrorfContext(r.Context(), "websocket upgrade failed: %s", err)
		return
	}
	defer conn.Close()
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	go func() {
		defer cancel()
		for {
			_, _, err := wsutil.ReadClientData(conn)
			if err != nil {
				return
			}
		}
	}()
	ch := s.broadcast.Subscribe(ctx, 64)
	defer s.broadcast.Unsubscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch.ReceiveChan():
			if !ok {
				return
			}
			raw, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			err = wsutil.WriteServerMessage(conn, ws.OpText, raw)
			if err != nil {
				return
			}
		}
	}
}
