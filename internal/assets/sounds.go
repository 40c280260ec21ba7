package assets

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// SampleRate is the output rate every sound is resampled to.
const SampleRate = beep.SampleRate(44100)

// resampleQuality is passed to beep.Resample.
const resampleQuality = 4

// speakerOnce guards the process-wide speaker.Init.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// SoundPool loads sounds into memory and plays them through one mixer.
// Play is safe to call from the game loop; it never blocks on audio.
type SoundPool struct {
	mu      sync.Mutex
	root    string
	index   map[string]int
	buffers []*beep.Buffer
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	started bool
	failed  bool // device init failed
	logger  *log.Logger
}

// NewSoundPool creates a pool resolving file references against root.
// A disabled pool still loads and indexes sounds but never plays them.
func NewSoundPool(root string, volume float64, enabled bool, logger *log.Logger) *SoundPool {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundPool{
		root:    root,
		index:   make(map[string]int),
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
		logger:  logger,
	}
}

// Start opens the audio device and attaches the mixer. When no device is
// available the pool logs the failure and stays silent.
func (p *SoundPool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		p.enabled = false
		p.failed = true
		p.logger.Warn("audio disabled", "err", speakerErr)
		return fmt.Errorf("initializing speaker: %w", speakerErr)
	}

	speaker.Play(p.mixer)
	p.started = true
	p.logger.Info("audio started", "rate", int(SampleRate), "sounds", len(p.buffers))
	return nil
}

// Close detaches every playing sound.
func (p *SoundPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.started = false
}

// SetEnabled mutes or unmutes playback. A pool whose device failed to
// start stays muted.
func (p *SoundPool) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled && !p.failed
	p.mu.Unlock()
}

// Enabled reports whether Play produces sound.
func (p *SoundPool) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Load returns the index of the sound named by ref, loading it on first use.
// Failures are logged and yield engine.NoAsset.
func (p *SoundPool) Load(ref string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i, ok := p.index[ref]; ok {
		return i
	}

	buf, err := p.load(ref)
	if err != nil {
		p.logger.Warn("sound not loaded", "ref", ref, "err", err)
		return engine.NoAsset
	}

	i := len(p.buffers)
	p.buffers = append(p.buffers, buf)
	p.index[ref] = i
	p.logger.Debug("sound loaded", "ref", ref, "index", i, "samples", buf.Len())
	return i
}

// SoundIndex implements engine.Assets.
func (p *SoundPool) SoundIndex(ref string) int {
	return p.Load(ref)
}

// Len returns the number of loaded sounds.
func (p *SoundPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buffers)
}

// Play starts the sound at index and returns immediately. Unknown indices,
// a disabled pool and a pool without a started device are no-ops.
func (p *SoundPool) Play(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || index == engine.NoAsset {
		return
	}
	if index < 0 || index >= len(p.buffers) {
		p.logger.Warn("sound index out of range", "index", index, "size", len(p.buffers))
		return
	}

	if !p.started {
		return
	}

	buf := p.buffers[index]
	s := volumeOf(buf.Streamer(0, buf.Len()), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Playing returns the number of sounds currently queued in the mixer.
func (p *SoundPool) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

func (p *SoundPool) load(ref string) (*beep.Buffer, error) {
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

	hz, isTone, err := parseTone(ref)
	if err != nil {
		return nil, err
	}
	if isTone {
		buf := beep.NewBuffer(format)
		buf.Append(newTone(hz, SampleRate))
		return buf, nil
	}

	if ext := strings.ToLower(filepath.Ext(ref)); ext != ".wav" {
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}

	f, err := os.Open(p.resolve(ref))
	if err != nil {
		return nil, fmt.Errorf("opening sound: %w", err)
	}
	defer f.Close()

	streamer, src, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sound: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if src.SampleRate == SampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, src.SampleRate, SampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("reading sound: %w", err)
	}
	return buf, nil
}

func (p *SoundPool) resolve(ref string) string {
	if filepath.IsAbs(ref) || p.root == "" {
		return ref
	}
	return filepath.Join(p.root, ref)
}

// volumeOf scales s by a linear volume in [0, 1].
func volumeOf(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol >= 1 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
