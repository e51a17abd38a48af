package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate for all cues.
const SampleRate = beep.SampleRate(44100)

// Player plays cues. Implementations must be safe to call from the UI loop.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that does nothing. Used when audio is disabled or
// the output device is unavailable.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// SoundManager owns the speaker and a mixer that cues are added to.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a manager at the given linear volume.
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the output device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue. It is a no-op before Initialize.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Build(c, sm.volume, SampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.logger.Debug("cue", "name", c)
}

// Close stops playback and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Open returns a SoundManager when enabled and the device opens, and
// Silent otherwise. Failure to open audio is logged, not fatal.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Silent{}
	}
	sm := NewSoundManager(volume, logger)
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return sm
}
