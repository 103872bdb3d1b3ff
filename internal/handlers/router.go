package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mghazyfawazh/outlines/docs"
	"github.com/mghazyfawazh/outlines/internal/middleware"
)

// NewRouter mounts the API on a gin engine. Everything except /ping and the
// swagger UI needs the API key.
func NewRouter(h *Handler, apiKey string) *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/", middleware.APIKeyAuth(apiKey))
	api.GET("/catalog", h.ListCatalog)
	api.GET("/grid", h.Grid)
	api.POST("/saved", h.Save)
	api.GET("/saved", h.GetAll)
	api.GET("/saved/:uuid", h.GetByUUID)
	api.PUT("/saved/:uuid", h.Refresh)
	api.DELETE("/saved/:uuid", h.Delete)
	api.GET("/saved/:uuid/schedule.xlsx", h.ExportSchedule)
	return r
}
