package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "salesboard/docs"
	"salesboard/internal/api/handler"
	"salesboard/pkg/router"
)

// RegisterRoutes wires the dataset API and the swagger UI onto the router.
func RegisterRoutes(r *router.Router, h *handler.DatasetHandler) {
	r.POST("/api/v1/datasets", h.Create)
	r.GET("/api/v1/datasets", h.List)
	r.GET("/api/v1/datasets/:id", h.Get)
	r.GET("/api/v1/datasets/:id/summary", h.Summary)
	r.GET("/api/v1/datasets/:id/charts", h.Charts)
	r.GET("/api/v1/datasets/:id/export", h.Export)
	r.GET("/api/v1/datasets/:id/errors", h.Errors)
	r.DELETE("/api/v1/datasets/:id", h.Delete)

	r.Mount("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
