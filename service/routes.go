package service

import (
	"library/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(handlers *Handlers) *gin.Engine {
	routes := gin.Default()

	routes.POST("/login", handlers.Login)
	routes.GET("/logout", handlers.Logout)

	admin := routes.Group("/admin")
	{
		admin.Use(middleware.RequireRole("admin"))

		admin.GET("/books", handlers.ListBooks)
		admin.POST("/books", handlers.AddBook)
		admin.DELETE("/books/:id", handlers.RemoveBook)
	}

	student := routes.Group("/student")
	{
		student.Use(middleware.RequireRole("student"))

		student.POST("/chat", handlers.Chat)
		student.GET("/activity", handlers.Activity)
	}

	return routes
}
