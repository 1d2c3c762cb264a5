package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salespredictor/advisor"
	"salespredictor/config"
	"salespredictor/database"
	"salespredictor/handlers"
	"salespredictor/middleware"
	"salespredictor/observability"
	"salespredictor/predictor"
)

func main() {
	os.Exit(run())
}

// run wires the service and blocks until it stops. It returns the exit code so
// deferred cleanup runs before the process exits.
func run() int {
	flag.Usage = usage
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}

	metrics := observability.NewMetrics()

	// Load the model once; a failure is logged and leaves the engine in demo mode.
	engine, _ := predictor.NewEngineFromCache(predictor.NewModelCache(cfg.ModelPath), metrics)

	sessionKey, err := middleware.DeriveSessionKey(cfg.SessionSecret)
	if err != nil {
		log.Printf("❌ Unable to derive session key: %v", err)
		return 1
	}

	ctx := context.Background()

	// Scenario catalog: Postgres when configured, built-in otherwise.
	var scenarios database.ScenarioStore = database.DefaultScenarios()
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Database unavailable, using built-in scenarios: %v", err)
		} else {
			defer database.Close(pool)
			if err := database.SeedScenarios(ctx, pool); err != nil {
				log.Printf("⚠️ Could not seed scenarios: %v", err)
			}
			scenarios = database.NewScenarioRepository(pool)
		}
	}

	// Tips: Gemini when an API key is set, static pro tips otherwise.
	var adv advisor.Advisor = advisor.StaticAdvisor{}
	if cfg.GeminiAPIKey != "" {
		gen, err := advisor.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Gemini unavailable, using static tips: %v", err)
		} else {
			defer gen.Close()
			adv = advisor.NewGeminiAdvisor(gen)
		}
	}

	h := handlers.New(engine, scenarios, adv, middleware.NewSessionManager(sessionKey), metrics)
	app := newServer(h)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("🚀 Serving http://%s", cfg.HTTPAddr)
	if err := serve(app, cfg.HTTPAddr, quit, shutdownTimeout(cfg)); err != nil {
		log.Printf("❌ Server stopped: %v", err)
		return 1
	}
	return 0
}

func shutdownTimeout(cfg config.Config) time.Duration {
	if cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return cfg.ShutdownTimeout
}
