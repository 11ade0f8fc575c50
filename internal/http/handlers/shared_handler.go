// README: Public share-link reads and the SSE live-update stream.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/modules/list"
	"wut2pack/internal/types"
)

type SharedHandler struct {
	lists    *list.Service
	notifier *list.RedisNotifier
}

func NewSharedHandler(svc *list.Service, notifier *list.RedisNotifier) *SharedHandler {
	return &SharedHandler{lists: svc, notifier: notifier}
}

func (h *SharedHandler) Get(c *gin.Context) {
	shareID := c.Param("shareId")
	if !isValidID(shareID) {
		writeError(c, http.StatusBadRequest, "invalid share id")
		return
	}
	l, err := h.lists.GetShared(c.Request.Context(), types.ID(shareID))
	if err != nil {
		writeListError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, listResponse(l))
}

// Events streams change events for one shared list as server-sent events.
// The stream ends when the viewer disconnects.
func (h *SharedHandler) Events(c *gin.Context) {
	shareID := c.Param("shareId")
	if !isValidID(shareID) {
		writeError(c, http.StatusBadRequest, "invalid share id")
		return
	}
	if _, err := h.lists.GetShared(c.Request.Context(), types.ID(shareID)); err != nil {
		writeListError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	events, cancel := h.notifier.Subscribe(ctx, types.ID(shareID))
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		}
	}
}
