package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/entity"
)

const borderPadding = 10 // Padding around game area

type shake struct {
	frames    int
	intensity int32
	offsetX   int32
	offsetY   int32
}

// Start triggers a screen shake for the given number of frames.
func (s *shake) Start(frames int, intensity int32) {
	s.frames = frames
	s.intensity = intensity
}

func (s *shake) update() {
	if s.frames <= 0 {
		s.offsetX, s.offsetY = 0, 0
		return
	}
	s.frames--
	s.offsetX = rl.GetRandomValue(-s.intensity, s.intensity)
	s.offsetY = rl.GetRandomValue(-s.intensity, s.intensity)
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	shake           shake
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Shake triggers a screen shake, used on collisions and timed
// power-up pickups.
func (r *Renderer) Shake(frames int, intensity int32) {
	r.shake.Start(frames, intensity)
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	r.shake.update()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch g.Phase {
	case game.PhaseMenu:
		r.drawMenu(g)
	case game.PhasePlaying:
		r.drawBoard(g)
		r.drawHUD(g)
	case game.PhasePaused:
		r.drawBoard(g)
		r.drawHUD(g)
		r.drawPauseOverlay()
	case game.PhaseGameOver:
		r.drawBoard(g)
		r.drawGameOver(g)
	case game.PhaseHighScores:
		r.drawHighScores(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(g *game.Game) {
	fontSize := int32(r.screenHeight / 45)
	hudHeight := fontSize*3 + 20

	// Calculate available space for grid after border padding and HUD
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - hudHeight

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(g.Grid.Width)
	cellH := availableHeight / int32(g.Grid.Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid.Height)

	// Center the grid below the HUD, applying the shake offset
	r.offsetX = (r.screenWidth-r.totalGridWidth)/2 + r.shake.offsetX
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.totalGridHeight)/2 + r.shake.offsetY

	// Grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	// Obstacles
	for _, obs := range g.Obstacles {
		r.drawCell(obs.X, obs.Y, rl.Gray)
	}

	// Snake: brighter head, flashing gold while invincible
	bodyColor := rl.DarkGreen
	headColor := rl.Green
	if g.Invincible() {
		if g.Ticks%2 == 0 {
			bodyColor = rl.Gold
			headColor = rl.Gold
		}
	}
	for i, p := range g.Snake.Body {
		color := bodyColor
		if i == len(g.Snake.Body)-1 { // Head
			color = headColor
		}
		r.drawCell(p.X, p.Y, color)
	}
	r.drawHeadMarker(g)

	// Food: moving food is orange
	foodColor := rl.Red
	if g.Food.Moving {
		foodColor = rl.Orange
	}
	r.drawCell(g.Food.Pos.X, g.Food.Pos.Y, foodColor)

	// Power-up
	if g.PowerUp != nil {
		r.drawCell(g.PowerUp.Pos.X, g.PowerUp.Pos.Y, powerUpColor(g.PowerUp.Kind))
	}
}

func (r *Renderer) drawCell(x, y int, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(x)*r.cellSize,
		r.offsetY+int32(y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHeadMarker draws the direction triangle on the head cell.
func (r *Renderer) drawHeadMarker(g *game.Game) {
	head := g.Snake.Head()
	dir := g.Snake.Direction.Vector()

	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize
	halfCell := r.cellSize / 2

	if dir.X > 0 { // Right
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	} else if dir.X < 0 { // Left
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	} else if dir.Y > 0 { // Down
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	} else { // Up
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func powerUpColor(kind entity.PowerUpKind) rl.Color {
	switch kind {
	case entity.SpeedBoost:
		return rl.Blue
	case entity.Invincibility:
		return rl.Gold
	case entity.ExtraPoints:
		return rl.Pink
	}
	return rl.White
}

func (r *Renderer) drawHUD(g *game.Game) {
	fontSize := int32(r.screenHeight / 45)
	lineHeight := fontSize + 5

	best := g.Scores.Best()
	if g.Score > best {
		best = g.Score
	}

	rl.DrawText(fmt.Sprintf("Score: %d   High Score: %d", g.Score, best),
		borderPadding, borderPadding, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Lives: %d", g.Lives),
		borderPadding, borderPadding+lineHeight, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %.1f   %s", g.Speed, g.Difficulty),
		borderPadding, borderPadding+lineHeight*2, fontSize, rl.White)

	if g.Invincible() {
		rl.DrawText("INVINCIBLE", r.screenWidth-rl.MeasureText("INVINCIBLE", fontSize)-borderPadding,
			borderPadding, fontSize, rl.Gold)
	}
	if g.SpeedBoosted() {
		rl.DrawText("BOOST", r.screenWidth-rl.MeasureText("BOOST", fontSize)-borderPadding,
			borderPadding+lineHeight, fontSize, rl.Blue)
	}
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}

func (r *Renderer) drawMenu(g *game.Game) {
	titleSize := int32(r.screenHeight / 12)
	fontSize := int32(r.screenHeight / 30)

	r.drawCentered("Snake Game", r.screenHeight/6, titleSize, rl.Green)
	r.drawCentered(fmt.Sprintf("Difficulty: %s", g.Difficulty), r.screenHeight/6+titleSize+20, fontSize, rl.White)

	instructions := []string{
		"Press SPACE to Start",
		"Use Arrow Keys to Move",
		"Eat Apples to Grow",
		"Avoid Walls and Yourself",
		fmt.Sprintf("You Have %d Lives", g.Lives),
		"Collect Power-Ups for Bonuses",
		"Press D to Change Difficulty",
		"Press H to View High Scores",
		"Press M to Mute",
	}
	y := r.screenHeight / 2
	for _, line := range instructions {
		r.drawCentered(line, y, fontSize, rl.White)
		y += fontSize + 10
	}
}

func (r *Renderer) drawPauseOverlay() {
	fontSize := int32(r.screenHeight / 15)
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 160})
	r.drawCentered("PAUSED", (r.screenHeight-fontSize)/2, fontSize, rl.White)
	r.drawCentered("Press P to Resume", r.screenHeight/2+fontSize, fontSize/2, rl.Gray)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	titleSize := int32(r.screenHeight / 10)
	fontSize := int32(r.screenHeight / 25)

	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 200})

	r.drawCentered("GAME OVER", r.screenHeight/6, titleSize, rl.Red)
	r.drawCentered(fmt.Sprintf("Your Score: %d", g.Score), r.screenHeight/6+titleSize+20, fontSize, rl.White)
	r.drawCentered(fmt.Sprintf("High Score: %d", g.Scores.Best()), r.screenHeight/6+titleSize+20+fontSize+10, fontSize, rl.Gold)

	y := r.screenHeight / 2
	if unlocked := g.UnlockedAchievements(); len(unlocked) > 0 {
		r.drawCentered("Achievements:", y, fontSize, rl.Gold)
		y += fontSize + 8
		for _, ach := range unlocked {
			r.drawCentered(fmt.Sprintf("%s - %s", ach.Name, ach.Description), y, fontSize*2/3, rl.White)
			y += fontSize*2/3 + 6
		}
		y += fontSize
	}

	r.drawCentered("Press SPACE to Restart", y, fontSize, rl.Green)
	r.drawCentered("Press H to View High Scores", y+fontSize+10, fontSize, rl.Blue)
}

func (r *Renderer) drawHighScores(g *game.Game) {
	titleSize := int32(r.screenHeight / 10)
	fontSize := int32(r.screenHeight / 25)

	r.drawCentered("High Scores", r.screenHeight/8, titleSize, rl.Green)

	scores := g.Scores.Scores()
	y := r.screenHeight / 4
	if len(scores) == 0 {
		r.drawCentered("No scores yet", y, fontSize, rl.Gray)
	}
	for i, entry := range scores {
		line := fmt.Sprintf("%2d. %s: %d", i+1, entry.Name, entry.Score)
		r.drawCentered(line, y+int32(i)*(fontSize+10), fontSize, rl.White)
	}

	stats := fmt.Sprintf("Session: %d games, best %d, avg %.1f",
		g.Stats.GamesPlayed(), g.Stats.BestScore(), g.Stats.AverageScore())
	r.drawCentered(stats, r.screenHeight-fontSize*3, fontSize*2/3, rl.Gray)
	r.drawCentered("Press H to go back", r.screenHeight-fontSize*2, fontSize*2/3, rl.Gray)
}
