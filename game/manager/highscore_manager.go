package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// HighScoreEntry is one persisted score.
type HighScoreEntry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	When  time.Time `json:"when"`
}

// HighScoreManager persists a small ranked score list, descending by
// score, truncated to a fixed capacity. Persistence failures fall back
// to an empty or unchanged list and never interrupt gameplay.
type HighScoreManager struct {
	path    string
	limit   int
	entries []HighScoreEntry
}

// NewHighScoreManager loads the score file at path. A missing or
// unreadable file yields an empty list.
func NewHighScoreManager(path string, limit int) *HighScoreManager {
	hm := &HighScoreManager{
		path:    path,
		limit:   limit,
		entries: make([]HighScoreEntry, 0, limit),
	}
	hm.load()
	return hm
}

func (hm *HighScoreManager) load() {
	data, err := os.ReadFile(hm.path)
	if err != nil {
		return // no prior data, start empty
	}
	var entries []HighScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return
	}
	hm.entries = entries
}

// Record inserts a score keeping descending order, truncates to the
// capacity, and persists. The updated list is valid even when the save
// fails.
func (hm *HighScoreManager) Record(name string, score int) error {
	hm.entries = InsertScore(hm.entries, HighScoreEntry{
		Name:  name,
		Score: score,
		When:  time.Now(),
	}, hm.limit)
	return hm.save()
}

// InsertScore returns entries with e inserted in descending score
// order, truncated to limit. Ties keep the older entry first.
func InsertScore(entries []HighScoreEntry, e HighScoreEntry, limit int) []HighScoreEntry {
	i := len(entries)
	for j, cur := range entries {
		if e.Score > cur.Score {
			i = j
			break
		}
	}
	entries = append(entries, HighScoreEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Qualifies reports whether score would enter the list.
func (hm *HighScoreManager) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(hm.entries) < hm.limit {
		return true
	}
	return score > hm.entries[len(hm.entries)-1].Score
}

// Scores returns the current entries, best first.
func (hm *HighScoreManager) Scores() []HighScoreEntry {
	return hm.entries
}

// Best returns the highest persisted score, 0 when empty.
func (hm *HighScoreManager) Best() int {
	if len(hm.entries) == 0 {
		return 0
	}
	return hm.entries[0].Score
}

func (hm *HighScoreManager) save() error {
	if dir := filepath.Dir(hm.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(hm.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := os.WriteFile(hm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}
