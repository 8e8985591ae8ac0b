package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PointWave/internal/broadcast"
	"PointWave/internal/config"
	"PointWave/internal/engine"
	"PointWave/internal/recorder"
	"PointWave/internal/scheduler"
	"PointWave/internal/wave"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PointWave engine starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	switch cfg.Database.Driver {
	case "postgres":
		pr, err := recorder.NewPostgresRecorder(cfg.Database.PostgresDSN)
		if err != nil {
			log.Printf("[WARN] init postgres recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = pr
			defer pr.Close()
		}
	default:
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
				rec = recorder.NewNoopRecorder()
			} else {
				rec = sr
				defer sr.Close()
			}
		} else {
			rec = recorder.NewNoopRecorder()
		}
	}

	// Init wave manager
	waves, err := wave.NewManager(cfg.Wave.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init wave manager: %v", err)
	}

	// Compose the economy facade
	eng := engine.New(waves, rec)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	bc := broadcast.NewLogBroadcaster()
	sched := scheduler.NewScheduler(ctx, eng, waves, rec, bc, cfg.Pool.HourlyTotal)
	if err := sched.RegisterAll(cfg.Schedule.RevealCron, cfg.Schedule.SweepCron, cfg.Schedule.SummaryCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing reveal task now")
		go sched.RunRevealNow()
	}

	log.Println("[INFO] PointWave engine is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PointWave engine stopped")
}
