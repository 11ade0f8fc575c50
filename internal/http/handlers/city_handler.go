// README: Destination autocomplete backed by the Google Geocoding API.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/maps"
)

type CityHandler struct {
	cities *maps.CityService
}

func NewCityHandler(svc *maps.CityService) *CityHandler {
	return &CityHandler{cities: svc}
}

func (h *CityHandler) Search(c *gin.Context) {
	if h.cities == nil {
		writeError(c, http.StatusServiceUnavailable, "city search not configured")
		return
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 20 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	cities, err := h.cities.Search(c.Request.Context(), q, limit)
	if err != nil {
		writeError(c, http.StatusBadGateway, "city search failed")
		return
	}
	if cities == nil {
		cities = []maps.City{}
	}
	writeJSON(c, http.StatusOK, cities)
}
