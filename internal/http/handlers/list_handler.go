// README: Saved-list handlers for create/get/update/delete/index.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/modules/list"
	"wut2pack/internal/modules/packing"
	"wut2pack/internal/types"
)

type ListHandler struct {
	lists *list.Service
}

func NewListHandler(svc *list.Service) *ListHandler {
	return &ListHandler{lists: svc}
}

type createListReq struct {
	Name        string          `json:"name"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Answers     packing.Answers `json:"answers"`
	IsShared    bool            `json:"isShared"`
}

func (h *ListHandler) Create(c *gin.Context) {
	var req createListReq
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

	l, err := h.lists.Create(c.Request.Context(), list.CreateCommand{
		Name:        strings.TrimSpace(req.Name),
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Answers:     req.Answers,
		IsShared:    req.IsShared,
	})
	if err != nil {
		writeListError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, listResponse(l))
}

func (h *ListHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid list id")
		return
	}
	l, err := h.lists.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeListError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, listResponse(l))
}

// Index returns the lists for a comma-separated set of ids. The client keeps
// its accessible-list ids locally; there are no accounts.
func (h *ListHandler) Index(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		writeJSON(c, http.StatusOK, []any{})
		return
	}
	var ids []types.ID
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if !isValidID(s) {
			writeError(c, http.StatusBadRequest, "invalid list id")
			return
		}
		ids = append(ids, types.ID(s))
	}
	lists, err := h.lists.List(c.Request.Context(), ids)
	if err != nil {
		writeListError(c, err)
		return
	}
	out := make([]map[string]any, 0, len(lists))
	for _, l := range lists {
		out = append(out, listResponse(l))
	}
	writeJSON(c, http.StatusOK, out)
}

type updateListReq struct {
	Name     *string              `json:"name,omitempty"`
	Items    *packing.PackingList `json:"items,omitempty"`
	IsShared *bool                `json:"isShared,omitempty"`
}

func (h *ListHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid list id")
		return
	}
	var req updateListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()
	if req.Name != nil {
		if err := h.lists.Rename(ctx, types.ID(id), *req.Name); err != nil {
			writeListError(c, err)
			return
		}
	}
	if req.Items != nil {
		if err := h.lists.ReplaceItems(ctx, types.ID(id), *req.Items); err != nil {
			writeListError(c, err)
			return
		}
	}
	if req.IsShared != nil {
		if err := h.lists.SetShared(ctx, types.ID(id), *req.IsShared); err != nil {
			writeListError(c, err)
			return
		}
	}

	l, err := h.lists.Get(ctx, types.ID(id))
	if err != nil {
		writeListError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, listResponse(l))
}

func (h *ListHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid list id")
		return
	}
	if err := h.lists.Delete(c.Request.Context(), types.ID(id)); err != nil {
		writeListError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": "deleted"})
}
