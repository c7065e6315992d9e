package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

type StreamHandler struct {
	bus Subscriber
}

func NewStreamHandler(bus Subscriber) *StreamHandler {
	return &StreamHandler{bus: bus}
}

// Stream holds the connection open and forwards board_updated events
// as server-sent events. The payload is a human-readable note only;
// clients re-fetch the board via GET /board when an event arrives.
func (h *StreamHandler) Stream(c *gin.Context) {
	id, events := h.bus.Subscribe()
	defer h.bus.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Message)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
