// Command snake-term plays the game in a terminal.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"statue-snake/audio"
	"statue-snake/config"
	"statue-snake/game"
	"statue-snake/game/manager"
	"statue-snake/game/types"
	"statue-snake/highscore"
	"statue-snake/term"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	player := audio.NewPlayer(cfg.Mute)
	defer player.Close()

	store := highscore.NewFileStore(cfg.HighScorePath)
	g := game.NewGame(cfg.GridSize, cfg.GridSize, store, manager.NewRandom(cfg.Seed))

	run(screen, g, player)
	log.Printf("Exiting with %s high score %d", g.Mode(), g.HighScore())
}

func run(screen tcell.Screen, g *game.Game, player *audio.Player) {
	renderer := term.NewRenderer(screen)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastUpdate := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				input, ok := term.TranslateKey(ev.Key(), ev.Rune())
				if ok && !g.HandleEvent(input) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if g.Phase() != types.PhaseRunning {
				lastUpdate = time.Now()
			} else if time.Since(lastUpdate) >= g.Speed().Delay() {
				player.Play(audio.CueFor(g.Update()))
				lastUpdate = time.Now()
			}
			renderer.Draw(g.Snapshot())
		}
	}
}
