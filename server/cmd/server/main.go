package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/boxcollide/assets"
	"github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/server/core"
	"github.com/automoto/boxcollide/shared/protocol"
)

func main() {
	configPath := flag.String("config", "boxcollide.yaml", "YAML file overriding the built-in configuration")
	port := flag.Uint("port", 0, "Server port (0 = config value)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (0 = config value)")
	level := flag.String("level", "", "Embedded level to run (empty = config value)")
	name := flag.String("name", "boxcollide server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	maxPlayers := flag.Int("maxplayers", 8, "Maximum connected players (0 = unlimited)")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("[config] %v", err)
	}
	if *port == 0 {
		*port = config.Server.Port
	}
	if *tickRate == 0 {
		*tickRate = config.Physics.TickRate
	}
	if *level == "" {
		*level = config.Server.Level
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	lvl, err := assets.LoadLevel(*level)
	if err != nil {
		log.Fatalf("[level] %v", err)
	}

	server := core.NewServer(lvl, core.Options{
		Name:       *name,
		Version:    *version,
		TickRate:   *tickRate,
		MaxPlayers: *maxPlayers,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[server] shutting down")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("[server] %q on port %d (level: %s, tick rate: %d/s, version: %s)",
		*name, *port, lvl.Name, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
