package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/automoto/ringrush/assets"
	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/game"
	"github.com/automoto/ringrush/shared/inputscript"
	"github.com/automoto/ringrush/shared/leveldata"
)

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name or path to a .tmx file")
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	scriptPath := flag.String("script", "", "YAML input script (default: embedded demo)")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = script length)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = config frame.tick_rate)")
	realtime := flag.Bool("realtime", false, "Pace ticks with the clock instead of running flat out")
	audioLog := flag.Bool("audio-log", false, "Log every audio event")
	seed := flag.Int64("seed", 1, "Seed for ring scatter")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level: %s (%d rings, %d enemies, %d springs, %d checkpoints)",
		level.Name, len(level.Rings), len(level.Enemies), len(level.Springs), len(level.Checkpoints))

	script, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load input script: %v", err)
	}

	var player audio.Player = audio.Nop{}
	if *audioLog {
		player = audio.LogPlayer{}
	}

	coord := game.NewCoordinator(cfg, level, player, rand.New(rand.NewSource(*seed)))
	loop := game.NewGameLoop(coord, game.ScriptInput(script, *ticks), *tickRate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	var last game.FrameResult
	if *realtime {
		last = loop.Run(ctx)
	} else {
		last = loop.RunFast()
	}

	pos := last.Body.Position
	log.Printf("Finished after %d ticks: state %s, position (%.2f, %.2f, %.2f)",
		last.Tick, last.State, pos.X(), pos.Y(), pos.Z())
	log.Printf("Rings %d, score %d, lives %d, game over %v",
		last.Economy.Rings, last.Economy.Score, last.Economy.Lives, last.GameOver)
}

// loadLevel treats names ending in .tmx as paths on disk and anything else as
// an embedded level.
func loadLevel(name string) (*leveldata.Level, error) {
	if !strings.HasSuffix(name, ".tmx") {
		return assets.LoadLevel(name)
	}
	dir, file := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	return leveldata.Load(os.DirFS(dir), file)
}

func loadScript(path string) (*inputscript.Script, error) {
	if path == "" {
		return assets.LoadDefaultScript()
	}
	return inputscript.Load(path)
}
