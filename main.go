package main

import (
	"fmt"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"statue-snake/audio"
	"statue-snake/config"
	"statue-snake/game"
	"statue-snake/game/manager"
	"statue-snake/game/types"
	"statue-snake/highscore"
	"statue-snake/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	store := highscore.NewFileStore(cfg.HighScorePath)
	g := game.NewGame(cfg.GridSize, cfg.GridSize, store, manager.NewRandom(cfg.Seed))

	player := audio.NewPlayer(cfg.Mute)
	defer player.Close()

	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Snake Game")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Escape is a menu key, closing is left to the window button
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if !ui.PollEvents(g) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// The first move waits a full tick after the direction key
		if g.Phase() != types.PhaseRunning {
			lastUpdate = time.Now()
		} else if time.Since(lastUpdate) >= g.Speed().Delay() {
			result := g.Update()
			player.Play(audio.CueFor(result))
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot())
	}

	log.Printf("Exiting with %s high score %d", g.Mode(), g.HighScore())
}
