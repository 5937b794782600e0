package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/config"
	"snake-arcade/game/manager"
	"snake-arcade/ui"
)

func main() {
	difficulty := flag.String("difficulty", "MEDIUM", "Difficulty tier (EASY, MEDIUM, HARD)")
	configPath := flag.String("config", config.ConfigFile, "Path to the configuration file")
	wrap := flag.Bool("wrap", false, "Wrap around grid edges instead of wall death")
	challenge := flag.Bool("challenge", false, "Enable challenge mode with obstacles")
	mute := flag.Bool("mute", false, "Start muted")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		println("Warning: ", err.Error())
	}
	if *wrap {
		cfg.EdgeMode = "wrap"
	}
	if *challenge {
		cfg.Challenge.Enabled = true
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		println("Warning: Could not create data directory:", err.Error())
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	g := game.NewGame(cfg, config.ParseDifficulty(*difficulty), nil)
	renderer := ui.NewRenderer()
	sounds := ui.NewSoundManager(cfg.AudioDir)
	defer sounds.Unload()
	if *mute {
		sounds.ToggleMute()
	}

	eventLog := manager.NewEventLog(cfg.EventLogFile)
	defer eventLog.Close()
	eventLog.Logf("session=%s start difficulty=%s edge=%s", g.Stats.Session(), g.Difficulty, cfg.EdgeMode)

	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if action := readAction(); action != game.ActionNone {
			if action == game.ActionMute {
				sounds.ToggleMute()
			} else {
				g.HandleAction(action)
			}
		}

		// Update game state at the speed-dependent interval
		if g.Phase == game.PhasePlaying && time.Since(lastUpdate) >= g.TickInterval() {
			g.Update()
			lastUpdate = time.Now()
		}

		for _, ev := range g.DrainEvents() {
			sounds.Play(ev.Kind)
			eventLog.Log(ev.Tick, ev.Kind.String())
			switch ev.Kind {
			case game.EventCollision:
				renderer.Shake(12, 5)
			case game.EventPowerUp:
				renderer.Shake(6, 3)
			}
		}

		renderer.Draw(g)
	}

	// Save final session state
	if err := g.Stats.SaveToFile(); err != nil {
		println("Warning: Could not save stats:", err.Error())
	}
	eventLog.Logf("session=%s end games=%d", g.Stats.Session(), g.Stats.GamesPlayed())
}

// readAction maps the pressed key to the logical action the core
// consumes. At most one action is produced per frame.
func readAction() game.Action {
	switch {
	case rl.IsKeyPressed(rl.KeySpace), rl.IsKeyPressed(rl.KeyEnter):
		return game.ActionStart
	case rl.IsKeyPressed(rl.KeyP):
		return game.ActionPause
	case rl.IsKeyPressed(rl.KeyM):
		return game.ActionMute
	case rl.IsKeyPressed(rl.KeyH):
		return game.ActionShowScores
	case rl.IsKeyPressed(rl.KeyD):
		return game.ActionCycleDifficulty
	case rl.IsKeyPressed(rl.KeyUp):
		return game.ActionMoveUp
	case rl.IsKeyPressed(rl.KeyRight):
		return game.ActionMoveRight
	case rl.IsKeyPressed(rl.KeyDown):
		return game.ActionMoveDown
	case rl.IsKeyPressed(rl.KeyLeft):
		return game.ActionMoveLeft
	}
	return game.ActionNone
}
