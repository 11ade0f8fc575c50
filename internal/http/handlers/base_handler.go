// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/modules/list"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures IDs are alphanumeric and at most 32 chars (matches the
// current ID generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, list.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, list.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// listResponse is the wire shape shared by the list and shared endpoints.
func listResponse(l *list.SavedList) map[string]any {
	return map[string]any{
		"id":          l.ID,
		"name":        l.Name,
		"origin":      l.Origin,
		"destination": l.Destination,
		"startDate":   l.StartDate.Format(dateLayout),
		"endDate":     l.EndDate.Format(dateLayout),
		"items":       l.Items,
		"shareId":     l.ShareID,
		"isShared":    l.IsShared,
		"createdAt":   l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
