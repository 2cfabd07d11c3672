package main

import (
	"library/cache"
	"library/config"
	"library/db"
	"library/loggers"
	"library/service"
)

const MAX_NUMBER_CACHED = 3

func main() {
	config.LoadEnvVariables()
	loggers.Init()
	config.SetupRedis()

	// the schema is a startup precondition; without it nothing works
	library, err := db.CreateSQLiteLibrary(config.DatabasePath())
	if err != nil {
		loggers.Logger.Fatal("failed to initialize library database: ", err)
	}
	defer library.Close()

	handlers, err := service.CreateHandlers(library, cache.CreateRedisCache(MAX_NUMBER_CACHED), config.AdminPassword())
	if err != nil {
		loggers.Logger.Fatal("failed to set up handlers: ", err)
	}

	routes := service.SetupRoutes(handlers)
	routes.Run()
}
