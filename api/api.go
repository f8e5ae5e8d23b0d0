package main

import (
	"log"
	"os"
	"teamstats/api/modules"
	"teamstats/api/routes"
	"teamstats/pkg/config"
	"teamstats/pkg/database"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	// Bring the schema up before serving anything.
	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Couldn't connect to the database: %v", err)
	}

	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(rawDb); err != nil {
		log.Fatalf("Couldn't run the migrations: %v", err)
	}

	// Create a module with all necessary handlers.
	module, err := modules.NewModule()
	if err != nil {
		log.Fatalf("Couldn't initialize the api module: %v", err)
	}
	defer module.MemCache.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.AnalyticsHandler,
	)

	log.Printf("Starting the analytics api at %v", time.Now().Format(time.RFC3339))

	// Start the server.
	router.Run(":8080")
}
