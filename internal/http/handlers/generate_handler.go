// README: Stateless list generation from questionnaire answers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/modules/packing"
)

type GenerateHandler struct{}

func NewGenerateHandler() *GenerateHandler {
	return &GenerateHandler{}
}

type generateReq struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Answers     packing.Answers `json:"answers"`
}

// Generate builds a packing list without persisting it, so the client can
// preview the result before saving.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	start, ok := parseDate(req.StartDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid endDate")
		return
	}
	if end.Before(start) {
		writeError(c, http.StatusBadRequest, "endDate before startDate")
		return
	}

	days := packing.DurationDays(start, end)
	items := packing.Generate(req.Answers, days, req.Origin, req.Destination)
	writeJSON(c, http.StatusOK, map[string]any{"items": items})
}
