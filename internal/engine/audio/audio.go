// Package audio plays short sound effects.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)

// Manager decodes sounds once and mixes them on demand.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolume    float64
	muted        bool

	mixer  *beep.Mixer
	sounds map[string]*beep.Buffer
}

// New creates a new audio manager. Sounds can be loaded before Init.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		sfxVolume:    1.0,
		mixer:        &beep.Mixer{},
		sounds:       make(map[string]*beep.Buffer),
	}
}

// Init opens the output device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops playback. Loaded sounds are kept.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the effect volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolume = clamp(vol, 0, 1)
}

// SetMuted silences every future Play.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// SFXVolume returns the effect volume.
func (m *Manager) SFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolume
}

// Muted reports whether playback is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Load decodes WAV data and stores it under name, replacing any previous
// sound with that name.
func (m *Manager) Load(name string, data []byte) error {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", name, err)
	}
	defer streamer.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	var src beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		src = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode wav %s: %w", name, err)
	}
	m.sounds[name] = buf
	return nil
}

// Has reports whether a sound is loaded under name.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sounds[name]
	return ok
}

// Length returns the length of a loaded sound.
func (m *Manager) Length(name string) (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	buf, ok := m.sounds[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	return m.sampleRate.D(buf.Len()), nil
}

// Play mixes a loaded sound into the output. Overlapping calls play
// concurrently.
func (m *Manager) Play(name string) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.sfxVolume
	muted := m.muted
	buf, ok := m.sounds[name]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	if !initialized {
		return ErrNotInitialized
	}
	if muted || vol <= 0 {
		return nil
	}

	speaker.Lock()
	m.mixer.Add(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
	})
	speaker.Unlock()
	return nil
}

// volumeToDb converts a 0-1 volume to decibels.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * gomath.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
