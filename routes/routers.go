package routes

import (
	"net/http"

	"viestay/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, roomDetail *controllers.RoomDetailController, reports *controllers.ReportController) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.GET("/rooms/:id", roomDetail.ShowRoom)
	router.GET("/rooms/:id/content", roomDetail.RoomContent)
	router.POST("/rooms/:id/report", roomDetail.SubmitReport)

	api := router.Group("/api")
	api.POST("/reports", reports.CreateReport)
}
