package api

import (
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleWS streams one task's events over a websocket. Query parameters:
// task_id (required) and since_seq (optional, replays history after it).
// The connection closes normally when the task's stream ends.
func (s *Server) handleWS(c *gin.Context) {
	taskID := c.Query("task_id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, rpcResponse{
			Error: &rpcError{Code: codeInvalidArgument, Message: "task_id query parameter required"},
		})
		return
	}

	var sinceSeq int64
	if raw := c.Query("since_seq"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, rpcResponse{
				Error: &rpcError{Code: codeInvalidArgument, Message: "since_seq must be a non-negative integer"},
			})
			return
		}
		sinceSeq = parsed
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Debug("Websocket accept failed", "task_id", taskID, "error", err)
		return
	}
	defer conn.CloseNow()

	connID := uuid.NewString()
	logger := s.logger.With("connection_id", connID, "task_id", taskID)
	logger.Debug("Websocket connection established", "since_seq", sinceSeq)

	events, cancel := s.deps.Supervisor.Subscribe(taskID, sinceSeq)
	defer cancel()

	// CloseRead surfaces client disconnects as context cancellation; the
	// server never expects inbound frames.
	ctx := conn.CloseRead(c.Request.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "stream ended")
				return
			}
			if err := wsjson.Write(ctx, conn, event); err != nil {
				logger.Debug("Websocket write failed", "error", err)
				return
			}
		}
	}
}
