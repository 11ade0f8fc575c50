// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wut2pack/internal/ai"
	"wut2pack/internal/http/handlers"
	"wut2pack/internal/http/middleware"
	"wut2pack/internal/maps"
	"wut2pack/internal/modules/list"
)

type ServerDeps struct {
	Lists    *list.Service
	Notifier *list.RedisNotifier

	// Cities and Tips are optional; their routes answer 503 when nil.
	Cities *maps.CityService
	Tips   *ai.GeminiProvider
}

func NewRouter(deps ServerDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	generateHandler := handlers.NewGenerateHandler()
	r.POST("/api/generate", generateHandler.Generate)

	listHandler := handlers.NewListHandler(deps.Lists)
	r.POST("/api/lists", listHandler.Create)
	r.GET("/api/lists", listHandler.Index)
	r.GET("/api/lists/:id", listHandler.Get)
	r.PATCH("/api/lists/:id", listHandler.Update)
	r.DELETE("/api/lists/:id", listHandler.Delete)

	sharedHandler := handlers.NewSharedHandler(deps.Lists, deps.Notifier)
	r.GET("/api/shared/:shareId", sharedHandler.Get)
	r.GET("/api/shared/:shareId/events", sharedHandler.Events)

	cityHandler := handlers.NewCityHandler(deps.Cities)
	r.GET("/api/cities", cityHandler.Search)

	weatherHandler := handlers.NewWeatherHandler()
	r.GET("/api/weather/advice", weatherHandler.Advice)

	tipsHandler := handlers.NewTipsHandler(deps.Tips)
	r.POST("/api/ai/tips", tipsHandler.Tips)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
