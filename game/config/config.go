package config

import (
	"encoding/json"
	"fmt"
	"os"

	"snake-arcade/game/types"
)

// ConfigFile is the default on-disk location of the user configuration.
const ConfigFile = "game_config.json"

// Difficulty is a named tier of initial game parameters.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	}
	return "MEDIUM"
}

// ParseDifficulty maps a tier name (case as written in the config file)
// to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "EASY", "easy":
		return Easy
	case "HARD", "hard":
		return Hard
	default:
		return Medium
	}
}

// Next cycles to the following tier (menu difficulty selection).
func (d Difficulty) Next() Difficulty {
	return (d + 1) % 3
}

// ScreenConfig holds window parameters.
type ScreenConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// GameplayConfig holds parameters shared by every difficulty tier.
type GameplayConfig struct {
	MaxSpeed       float64 `json:"maxSpeed"`       // Ticks per second, upper bound
	SpeedIncrement float64 `json:"speedIncrement"` // Added per food eaten
	BasePoints     int     `json:"basePoints"`     // Multiplied by the tier score multiplier
}

// DifficultyConfig fixes the initial parameters of one tier.
type DifficultyConfig struct {
	InitialSpeed    float64 `json:"initialSpeed"` // Ticks per second
	Lives           int     `json:"lives"`
	PowerUpChance   float64 `json:"powerUpChance"`   // Rolled when food is eaten
	ScoreMultiplier int     `json:"scoreMultiplier"` // Points per food = basePoints * this
}

// PowerUpConfig holds the effect parameters of the power-up catalog.
// Durations are in ticks; the defaults approximate the 5s/3s wall-clock
// durations at the Medium tick rate.
type PowerUpConfig struct {
	SpeedBoostTicks    int     `json:"speedBoostTicks"`
	SpeedBoostAmount   float64 `json:"speedBoostAmount"`
	InvincibilityTicks int     `json:"invincibilityTicks"`
	ExtraPoints        int     `json:"extraPoints"`
	SpawnInterval      int     `json:"spawnInterval"`    // Ticks between idle spawn rolls
	IdleSpawnChance    float64 `json:"idleSpawnChance"`  // Chance on each idle roll
	MovingFoodChance   float64 `json:"movingFoodChance"` // Chance a food spawn moves
}

// ChallengeConfig controls the optional obstacle mode.
type ChallengeConfig struct {
	Enabled      bool `json:"enabled"`
	MinObstacles int  `json:"minObstacles"`
	MaxObstacles int  `json:"maxObstacles"`
}

// Config is the immutable run configuration handed to the game at
// construction. It is loaded once and never mutated during a run.
type Config struct {
	Screen       ScreenConfig                `json:"screen"`
	Grid         types.Grid                  `json:"grid"`
	Gameplay     GameplayConfig              `json:"gameplay"`
	Difficulties map[string]DifficultyConfig `json:"difficultyLevels"`
	PowerUps     PowerUpConfig               `json:"powerUps"`
	Challenge    ChallengeConfig             `json:"challenge"`
	EdgeMode     string                      `json:"edgeMode"` // "wall" or "wrap"

	DataDir        string `json:"dataDir"`
	HighScoreFile  string `json:"highScoreFile"`
	StatsFile      string `json:"statsFile"`
	EventLogFile   string `json:"eventLogFile"`
	AudioDir       string `json:"audioDir"`
	HighScoreLimit int    `json:"highScoreLimit"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Advanced Snake Game",
		},
		Grid: types.Grid{Width: 40, Height: 30},
		Gameplay: GameplayConfig{
			MaxSpeed:       15,
			SpeedIncrement: 0.5,
			BasePoints:     1,
		},
		Difficulties: map[string]DifficultyConfig{
			"EASY":   {InitialSpeed: 3, Lives: 5, PowerUpChance: 0.4, ScoreMultiplier: 1},
			"MEDIUM": {InitialSpeed: 5, Lives: 3, PowerUpChance: 0.3, ScoreMultiplier: 2},
			"HARD":   {InitialSpeed: 7, Lives: 1, PowerUpChance: 0.2, ScoreMultiplier: 3},
		},
		PowerUps: PowerUpConfig{
			SpeedBoostTicks:    25, // ~5s at the Medium initial speed
			SpeedBoostAmount:   2,
			InvincibilityTicks: 15, // ~3s at the Medium initial speed
			ExtraPoints:        5,
			SpawnInterval:      50,
			IdleSpawnChance:    0.2,
			MovingFoodChance:   0.3,
		},
		Challenge: ChallengeConfig{
			Enabled:      false,
			MinObstacles: 1,
			MaxObstacles: 5,
		},
		EdgeMode:       "wall",
		DataDir:        "data",
		HighScoreFile:  "data/highscores.json",
		StatsFile:      "data/stats.json",
		EventLogFile:   "snake_game.log",
		AudioDir:       "audio",
		HighScoreLimit: 10,
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshalling into the defaults keeps every struct field the user
	// did not override.
	if err := json.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Map values are replaced wholesale, not merged, so a partial tier
	// override would zero the tier's other fields. Redo each overridden
	// tier field-wise over its default.
	var tiers struct {
		Difficulties map[string]json.RawMessage `json:"difficultyLevels"`
	}
	if err := json.Unmarshal(data, &tiers); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	for name, raw := range tiers.Difficulties {
		tier := Default().Difficulties[name]
		if err := json.Unmarshal(raw, &tier); err != nil {
			return Default(), fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.Difficulties[name] = tier
	}
	return cfg, nil
}

// Save writes the configuration to path in indented JSON.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Tier returns the parameter set for the given difficulty, falling
// back to the Medium defaults if the tier was removed from the file.
func (c *Config) Tier(d Difficulty) DifficultyConfig {
	if t, ok := c.Difficulties[d.String()]; ok {
		return t
	}
	return Default().Difficulties["MEDIUM"]
}

// Edge returns the configured edge behavior, defaulting to wall-death.
func (c *Config) Edge() types.EdgeMode {
	if c.EdgeMode == "wrap" {
		return types.EdgeWrap
	}
	return types.EdgeWall
}
