package config

import (
	"os"
	"path/filepath"
	"testing"

	"snake-arcade/game/types"
)

func TestDefaultTiers(t *testing.T) {
	cfg := Default()
	tests := []struct {
		diff  Difficulty
		speed float64
		lives int
		mult  int
	}{
		{Easy, 3, 5, 1},
		{Medium, 5, 3, 2},
		{Hard, 7, 1, 3},
	}
	for _, tt := range tests {
		tier := cfg.Tier(tt.diff)
		if tier.InitialSpeed != tt.speed || tier.Lives != tt.lives || tier.ScoreMultiplier != tt.mult {
			t.Errorf("%v tier = %+v, want speed %v lives %d mult %d",
				tt.diff, tier, tt.speed, tt.lives, tt.mult)
		}
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid != Default().Grid {
		t.Errorf("grid = %+v, want defaults", cfg.Grid)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	partial := `{"grid": {"Width": 20, "Height": 20}, "edgeMode": "wrap"}`
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid != (types.Grid{Width: 20, Height: 20}) {
		t.Errorf("grid = %+v, want 20x20", cfg.Grid)
	}
	if cfg.Edge() != types.EdgeWrap {
		t.Error("edge mode override not applied")
	}
	// Untouched sections keep their defaults.
	if cfg.Gameplay.MaxSpeed != Default().Gameplay.MaxSpeed {
		t.Errorf("maxSpeed = %v, want default %v", cfg.Gameplay.MaxSpeed, Default().Gameplay.MaxSpeed)
	}
}

func TestLoadMergesPartialTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	partial := `{"difficultyLevels": {"EASY": {"lives": 9}}}`
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tier := cfg.Tier(Easy)
	if tier.Lives != 9 {
		t.Errorf("lives = %d, want 9", tier.Lives)
	}
	// The untouched tier fields keep their defaults; a zeroed initial
	// speed would stall the tick loop.
	def := Default().Difficulties["EASY"]
	if tier.InitialSpeed != def.InitialSpeed {
		t.Errorf("initialSpeed = %v, want default %v", tier.InitialSpeed, def.InitialSpeed)
	}
	if tier.PowerUpChance != def.PowerUpChance || tier.ScoreMultiplier != def.ScoreMultiplier {
		t.Errorf("tier = %+v, want non-overridden fields from %+v", tier, def)
	}
	// The other tiers are untouched.
	if cfg.Tier(Hard) != Default().Difficulties["HARD"] {
		t.Errorf("HARD tier = %+v, want default", cfg.Tier(Hard))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")

	cfg := Default()
	cfg.Challenge.Enabled = true
	cfg.EdgeMode = "wrap"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Challenge.Enabled || loaded.EdgeMode != "wrap" {
		t.Errorf("round trip lost overrides: %+v", loaded)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"EASY", Easy},
		{"easy", Easy},
		{"HARD", Hard},
		{"MEDIUM", Medium},
		{"bogus", Medium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyCycle(t *testing.T) {
	if Easy.Next() != Medium || Medium.Next() != Hard || Hard.Next() != Easy {
		t.Error("difficulty cycle broken")
	}
}
