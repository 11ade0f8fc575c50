// README: Seasonal climate advice for a destination latitude and travel date.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/modules/weather"
)

type WeatherHandler struct{}

func NewWeatherHandler() *WeatherHandler {
	return &WeatherHandler{}
}

func (h *WeatherHandler) Advice(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(c, http.StatusBadRequest, "invalid lat")
		return
	}
	date, ok := parseDate(c.Query("date"))
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid date")
		return
	}
	writeJSON(c, http.StatusOK, weather.AdviceFor(lat, date, time.Now()))
}
