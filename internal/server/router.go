package server

import (
	"html/template"

	"rbay-web/internal/backend"
	"rbay-web/internal/session"
	"rbay-web/services/web/handler"
	"rbay-web/services/web/helpers"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. templatesGlob
// locates the HTML templates relative to the working directory.
func SetupRouter(client backend.Client, templatesGlob string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.SetFuncMap(template.FuncMap{
		"currency": helpers.FormatCurrency,
		"timefmt":  helpers.FormatTimestamp,
	})
	router.LoadHTMLGlob(templatesGlob)

	resolver := session.NewResolver(client)
	router.Use(SessionMiddleware(resolver))

	webHandler := handler.NewWebHandler(client)

	router.GET("/", webHandler.HomeHandler)

	auth := router.Group("/auth")
	{
		auth.GET("/signup", webHandler.SignUpPageHandler)
		auth.POST("/signup", webHandler.SignUpSubmitHandler)
		auth.GET("/signin", webHandler.SignInPageHandler)
		auth.POST("/signin", webHandler.SignInSubmitHandler)
		auth.POST("/signout", webHandler.SignOutHandler)
	}

	items := router.Group("/items")
	{
		items.GET("/:item_id", webHandler.ItemDetailHandler)
		items.POST("/:item_id/bids", webHandler.PlaceBidHandler)
		items.POST("/:item_id/likes", webHandler.ToggleLikeHandler)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/items", webHandler.DashboardHandler)
		dashboard.GET("/items/new", webHandler.NewItemPageHandler)
		dashboard.POST("/items/new", webHandler.NewItemSubmitHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id", webHandler.ProfileHandler)
	}

	router.NoRoute(webHandler.NotFoundHandler)

	return router
}
