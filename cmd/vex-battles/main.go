package main

import (
	"os"
	"time"

	"github.com/ericogr/vex-battles/internal/api"
	"github.com/ericogr/vex-battles/internal/constants"
	"github.com/ericogr/vex-battles/internal/logging"
	"github.com/ericogr/vex-battles/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret, constants.EnvGoogleClientID, constants.EnvGoogleClientSecret})

	// Battle catalog file (required). Path may be provided via VEX_CONFIG
	// or defaults to ./vex_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./vex_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via VEX_DB. Default to a `data/`
	// directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/vex.db"
	}
	repo := createRepositoryOrExit(dbPath)

	manager := service.NewManager(repo, cfg)
	handler := api.NewBattleHandler(manager)
	authHandler := api.NewAuthHandler(manager)

	// Background scanner: forfeit turns stuck on player input past the
	// action timeout, and drop battle sessions idle past the session TTL so
	// abandoned battles do not pile up in memory.
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			manager.ForfeitOverdueTurns(now)
			if n := manager.SweepExpired(now, cfg.SessionTTL); n > 0 {
				logging.Info("swept idle battle sessions", logging.Fields{"count": n})
			}
		}
	}()

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
		protected.POST(constants.RoutePlayerStats, handler.UpdatePlayerProfile)
		protected.GET(constants.RouteBattleHistory, handler.History)
		protected.POST(constants.RouteBattles, handler.StartBattle)
		protected.GET(constants.RouteBattleByID, handler.GetBattle)
		protected.POST(constants.RouteBattleAction, handler.SubmitAction)
		protected.POST(constants.RouteBattleAdvance, handler.Advance)
		protected.GET(constants.RouteBattleOutcome, handler.GetOutcome)
	}

	router.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)
	router.POST(constants.RouteAuthLogout, authHandler.Logout)

	// Start server on configured address
	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
