package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SessionRecord rappresenta i dati di una singola partita conclusa.
type SessionRecord struct {
	Session    string    `json:"session"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Ticks      int       `json:"ticks"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// StatsManager accumulates per-game records under a session UUID and
// persists them as JSON. Records from previous sessions are kept.
type StatsManager struct {
	path    string
	session string
	records []SessionRecord
}

// NewStatsManager crea una nuova istanza e tenta di caricare i dati dal file.
func NewStatsManager(path string) *StatsManager {
	sm := &StatsManager{
		path:    path,
		session: uuid.New().String(),
		records: make([]SessionRecord, 0),
	}
	sm.loadFromFile()
	return sm
}

// Session returns the session UUID.
func (sm *StatsManager) Session() string {
	return sm.session
}

// AddGame appends a finished game to the session records.
func (sm *StatsManager) AddGame(difficulty string, score, ticks int, start, end time.Time) {
	sm.records = append(sm.records, SessionRecord{
		Session:    sm.session,
		Difficulty: difficulty,
		Score:      score,
		Ticks:      ticks,
		StartTime:  start,
		EndTime:    end,
	})
}

// GamesPlayed restituisce il numero totale di partite registrate.
func (sm *StatsManager) GamesPlayed() int {
	return len(sm.records)
}

// BestScore restituisce il punteggio massimo registrato.
func (sm *StatsManager) BestScore() int {
	best := 0
	for _, r := range sm.records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// AverageScore calcola e restituisce il punteggio medio.
func (sm *StatsManager) AverageScore() float64 {
	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

// SaveToFile salva le statistiche su file in formato JSON.
func (sm *StatsManager) SaveToFile() error {
	if dir := filepath.Dir(sm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(sm.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// loadFromFile carica le statistiche da file.
func (sm *StatsManager) loadFromFile() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // nessun file, si parte con statistiche vuote
		}
		return err
	}
	return json.Unmarshal(data, &sm.records)
}
