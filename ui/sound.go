package ui

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

const (
	sampleRate    = 22050
	placeholderMs = 300
)

// placeholder tone per event kind, used when no wav file is shipped
var soundFreqs = map[game.EventKind]float64{
	game.EventEat:         880,
	game.EventPowerUp:     1320,
	game.EventCollision:   220,
	game.EventGameOver:    440,
	game.EventAchievement: 1760,
}

// SoundManager plays one cue per gameplay event. Missing wav files are
// synthesized as placeholder sine tones on disk before loading, so a
// fresh checkout still has audio.
type SoundManager struct {
	sounds map[game.EventKind]rl.Sound
	muted  bool
	volume float32
}

// NewSoundManager loads the event sounds from dir. The audio device
// must already be initialized; if it is not, the manager stays silent.
func NewSoundManager(dir string) *SoundManager {
	sm := &SoundManager{
		sounds: make(map[game.EventKind]rl.Sound),
		volume: 0.5,
	}
	if !rl.IsAudioDeviceReady() {
		return sm
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return sm
	}
	for kind, freq := range soundFreqs {
		path := filepath.Join(dir, kind.String()+".wav")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writePlaceholderWAV(path, freq); err != nil {
				continue
			}
		}
		sm.sounds[kind] = rl.LoadSound(path)
	}
	rl.SetMasterVolume(sm.volume)
	return sm
}

// Play plays the cue for kind, if loaded and not muted.
func (sm *SoundManager) Play(kind game.EventKind) {
	if sm.muted {
		return
	}
	if sound, ok := sm.sounds[kind]; ok {
		rl.PlaySound(sound)
	}
}

// ToggleMute flips the master volume between 0 and the configured
// level.
func (sm *SoundManager) ToggleMute() {
	sm.muted = !sm.muted
	if !rl.IsAudioDeviceReady() {
		return
	}
	if sm.muted {
		rl.SetMasterVolume(0)
	} else {
		rl.SetMasterVolume(sm.volume)
	}
}

// Muted reports the current mute state.
func (sm *SoundManager) Muted() bool {
	return sm.muted
}

// Unload releases the loaded sounds.
func (sm *SoundManager) Unload() {
	for _, sound := range sm.sounds {
		rl.UnloadSound(sound)
	}
	sm.sounds = make(map[game.EventKind]rl.Sound)
}

// writePlaceholderWAV writes a short decaying sine tone as a 16-bit
// mono PCM wav file.
func writePlaceholderWAV(path string, freq float64) error {
	samples := sampleRate * placeholderMs / 1000
	data := make([]int16, samples)
	for i := range data {
		t := float64(i) / sampleRate
		decay := 1 - float64(i)/float64(samples)
		data[i] = int16(12000 * decay * math.Sin(2*math.Pi*freq*t))
	}

	var pcm bytes.Buffer
	if err := binary.Write(&pcm, binary.LittleEndian, data); err != nil {
		return err
	}

	var buf bytes.Buffer
	dataLen := uint32(pcm.Len())
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))           // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm.Bytes())

	return os.WriteFile(path, buf.Bytes(), 0644)
}
