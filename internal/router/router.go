package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListLessons(c *ginext.Context)
	SearchLessons(c *ginext.Context)
	UpdateLesson(c *ginext.Context)
	CreateOrder(c *ginext.Context)
}

func InitRouter(mode, imagesDir string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Lessons
		api.GET("/lessons", h.ListLessons)
		api.GET("/lessons/search", h.SearchLessons)
		api.PUT("/lessons/:id", h.UpdateLesson)

		// Orders
		api.POST("/orders", h.CreateOrder)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.Static("/images", imagesDir)

	return router
}
