// README: AI packing tips grounded in an already-generated list.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/ai"
	"wut2pack/internal/modules/packing"
)

type TipsHandler struct {
	tips *ai.GeminiProvider
}

func NewTipsHandler(provider *ai.GeminiProvider) *TipsHandler {
	return &TipsHandler{tips: provider}
}

type tipsReq struct {
	Destination string              `json:"destination"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
	Items       packing.PackingList `json:"items"`
}

func (h *TipsHandler) Tips(c *gin.Context) {
	if h.tips == nil {
		writeError(c, http.StatusServiceUnavailable, "tips not configured")
		return
	}
	var req tipsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	text, err := h.tips.PackingTips(c.Request.Context(), ai.TipsRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		List:        req.Items,
	})
	if err != nil {
		writeError(c, http.StatusBadGateway, "tips generation failed")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"tips": text})
}
