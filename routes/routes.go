package routes

import (
	"os"

	"github.com/QUATTR0KI/fatbeaches-web/controllers"
	"github.com/QUATTR0KI/fatbeaches-web/middlewares"
	"github.com/QUATTR0KI/fatbeaches-web/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, access *services.AccessService, refresher *services.SummaryRefresher) *gin.Engine {
	r := gin.Default()

	rt := controllers.NewRealtimeController(hub, access, refresher)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a session
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", controllers.Logout)

		api.GET("/access/state", controllers.GetAccessState)
		api.POST("/access/role", controllers.SelectRole)

		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.SubmitProfile)

		api.POST("/trainer/application", controllers.SubmitTrainerApplication)
		api.GET("/trainer/application", controllers.GetTrainerApplication)

		api.GET("/food/search", controllers.SearchFoods)
		api.POST("/food", controllers.CreateFood)

		api.POST("/diary/entries", controllers.LogEntry)
		api.GET("/diary/summary", controllers.GetDailySummary)

		api.GET("/ws", rt.StateWS)
	}

	// Administrator surface: application review is gated by a shared key,
	// not a user session.
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminKeyMiddleware(os.Getenv("ADMIN_API_KEY")))
	{
		admin.POST("/trainer-applications/:id/decision", controllers.DecideTrainerApplication)
	}

	return r
}
