package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

// pcmWAV builds a mono 16-bit PCM WAV file holding n samples.
func pcmWAV(rate uint32, n int) []byte {
	data := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(int16(i*64)))
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(data)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&b, binary.LittleEndian, rate)
	binary.Write(&b, binary.LittleEndian, rate*2)
	binary.Write(&b, binary.LittleEndian, uint16(2))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	b.Write(data)
	return b.Bytes()
}

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -0.01, 0.01},
		{0.5, -6.1, -5.9},
		{0.25, -12.1, -11.9},
		{0.0, -200, -90},
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m.MasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.MasterVolume())
	}
	if m.SFXVolume() != 1.0 {
		t.Errorf("default SFX volume = %f, want 1.0", m.SFXVolume())
	}
	if m.IsInitialized() || m.Muted() {
		t.Error("new manager should be uninitialized and unmuted")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	if m.MasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.MasterVolume())
	}
	m.SetMasterVolume(2.0)
	if m.MasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.MasterVolume())
	}
	m.SetSFXVolume(-1.0)
	if m.SFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.SFXVolume())
	}
	m.SetMuted(true)
	if !m.Muted() {
		t.Error("SetMuted(true) did not stick")
	}
}

func TestLoad(t *testing.T) {
	m := New()
	if err := m.Load("whack", pcmWAV(uint32(DefaultSampleRate), 4410)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !m.Has("whack") {
		t.Fatal("sound not stored")
	}
	d, err := m.Length("whack")
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if d < 99*time.Millisecond || d > 101*time.Millisecond {
		t.Errorf("length = %v, want 100ms", d)
	}
}

func TestLoadResamples(t *testing.T) {
	m := New()
	if err := m.Load("slow", pcmWAV(22050, 2205)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	d, err := m.Length("slow")
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if d < 95*time.Millisecond || d > 105*time.Millisecond {
		t.Errorf("resampled length = %v, want about 100ms", d)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	m := New()
	if err := m.Load("bad", []byte("not a wav file at all")); err == nil {
		t.Error("expected decode error")
	}
	if m.Has("bad") {
		t.Error("failed load should not store a sound")
	}
}

func TestPlayErrors(t *testing.T) {
	m := New()
	if err := m.Play("missing"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("expected ErrUnknownSound, got %v", err)
	}
	if err := m.Load("whack", pcmWAV(uint32(DefaultSampleRate), 100)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := m.Play("whack"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}
