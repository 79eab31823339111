package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the versioned API on rg (typically /v1).
//
// Graph endpoints:
//
//	GET  /v1/graphs/:length          - metadata and component summary
//	GET  /v1/graphs/:length/path     - path + statistics (from, to, algo)
//	GET  /v1/graphs/:length/next     - next word toward the target
//	GET  /v1/graphs/:length/compare  - all three strategies side by side
//
// Game endpoints:
//
//	POST /v1/games                   - start a session
//	GET  /v1/games/:id               - session state
//	POST /v1/games/:id/moves         - play a word
//	GET  /v1/games/:id/hint          - hint from a chosen strategy (algo)
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	graphs := rg.Group("/graphs/:length")
	{
		graphs.GET("", h.HandleGraph)
		graphs.GET("/path", h.HandlePath)
		graphs.GET("/next", h.HandleNext)
		graphs.GET("/compare", h.HandleCompare)
	}

	games := rg.Group("/games")
	{
		games.POST("", h.HandleCreateGame)
		games.GET("/:id", h.HandleGetGame)
		games.POST("/:id/moves", h.HandleMove)
		games.GET("/:id/hint", h.HandleHint)
	}
}

// NewRouter builds the full engine: health, Prometheus metrics from g and
// the /v1 API.
func NewRouter(h *Handlers, g prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	RegisterRoutes(router.Group("/v1"), h)

	return router
}
