package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanbanlive/internal/bus"
)

// storageTimeout bounds every storage call made on behalf of a request.
const storageTimeout = 5 * time.Second

// Broadcaster is the mutation-side view of the notification bus.
type Broadcaster interface {
	Broadcast(message string)
}

// Subscriber is the stream-side view of the notification bus.
type Subscriber interface {
	Subscribe() (uuid.UUID, <-chan bus.Event)
	Unsubscribe(id uuid.UUID)
}

func storageContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storageTimeout)
}
