package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"teamstats/api/cache"
	analyticsservice "teamstats/api/services/analytics"
	"teamstats/pkg/config"
	"teamstats/pkg/database"
	"teamstats/pkg/logger"
	"teamstats/pkg/redis"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

// Warms the analytics caches for every team on a fixed interval, so the
// dashboard reads served by the api hit redis instead of recomputing.
func main() {
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(rawDb); err != nil {
		log.Fatal(err)
	}

	jobLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the job logger: %v", err)
	}

	memCache := cache.NewMemCache()
	defer memCache.Close()

	service := analyticsservice.NewAnalyticsService(&analyticsservice.AnalyticsServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redis.GetClient(),
	})

	log.Println("Starting the analytics cache warmer.")

	// Create a new scheduler with options.
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Couldn't create the scheduler: %v", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(func() {
			warmAllTeams(context.Background(), service, jobLogger)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Couldn't register the warm job: %v", err)
	}

	scheduler.Start()

	// Block until asked to stop, then ship whatever was logged.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := scheduler.Shutdown(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}

	jobLogger.Close(fmt.Sprintf("scheduler/warm-%s.log", time.Now().Format("2006-01-02-15-04")))
}

// warmAllTeams recomputes both analytics results for every registered team.
// A failing team doesn't stop the others.
func warmAllTeams(ctx context.Context, service *analyticsservice.AnalyticsService, jobLogger *logger.NewLogger) {
	teams, err := service.AnalyticsRepository.ListTeams(ctx)
	if err != nil {
		jobLogger.Errorf("Couldn't list the teams: %v", err)
		return
	}

	for _, team := range teams {
		if err := service.RefreshTeamAnalytics(ctx, team.ID); err != nil {
			jobLogger.Errorf("Couldn't warm the analytics caches for team %d: %v", team.ID, err)
		}
	}

	jobLogger.Infof("Warmed the analytics caches for %d teams", len(teams))
}
