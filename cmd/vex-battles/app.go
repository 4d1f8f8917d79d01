package main

import (
	"os"

	"github.com/ericogr/vex-battles/internal/config"
	"github.com/ericogr/vex-battles/internal/logging"
	"github.com/ericogr/vex-battles/internal/storage"
)

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid battle configuration", err, logging.Fields{"config_path": path, "hint": "create a vex_config.json with an 'enemy_list' array and optional 'boss_list', see the repository example"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
