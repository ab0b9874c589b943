package main

import (
	"flag"
	"runtime"

	"hellocube/internal/logger"
	"hellocube/pkg/config"
	"hellocube/pkg/engine"
)

func init() {
	// GLFW requires the context thread to be the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("using default configuration: %v", err)
	}
	log.SetLevel(cfg.Diagnostics.LogLevel)

	app, err := engine.New(cfg, log)
	if err != nil {
		// Initialization failure skips the loop but still cleans up, and
		// the process exits normally.
		log.Errorf("failed to initialize engine: %v", err)
		app.Destroy()
		return
	}

	if err := app.LoadShaders(cfg.Shaders.Startup.Vertex, cfg.Shaders.Startup.Fragment); err != nil {
		log.Warnf("something wrong with our shaders: %v", err)
	} else {
		app.Run()
	}

	app.Destroy()
}
