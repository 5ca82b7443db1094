package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/httperr"
	"github.com/armandiucs114200-ui/barberia-fullstack/internal/weather"
)

type WeatherHandler struct {
	forecasts weather.Provider
}

func NewWeatherHandler(forecasts weather.Provider) *WeatherHandler {
	return &WeatherHandler{forecasts: forecasts}
}

// Current returns today's forecast for the configured location.
func (h *WeatherHandler) Current(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	forecast := h.forecasts.Forecast(c.Request.Context(), today)
	if forecast == nil {
		httperr.ServiceUnavailable(c, "Weather service unavailable")
		return
	}

	c.JSON(http.StatusOK, forecast)
}
