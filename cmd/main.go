package main

import (
	"github.com/QUATTR0KI/fatbeaches-web/config"
	"github.com/QUATTR0KI/fatbeaches-web/routes"
	"github.com/QUATTR0KI/fatbeaches-web/services"
	"github.com/QUATTR0KI/fatbeaches-web/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	bus := services.NewSessionBus()
	nutrition := services.NewNutritionService(config.DB)
	refresher := services.NewSummaryRefresher(nutrition, hub)
	services.InitSessionDeps(bus, hub, refresher)

	// the access state machine listens for session events for as long as
	// the process lives
	access := services.NewAccessService(config.DB)
	unsubscribe := access.WatchSessions(bus, hub)
	defer unsubscribe()

	r := routes.SetupRouter(hub, access, refresher)
	r.Run(":8080")
}
