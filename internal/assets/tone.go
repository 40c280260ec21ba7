package assets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// Synthesized sounds are referenced as "tone:<hz>" so levels work without
// any audio files on disk.
const (
	tonePrefix   = "tone:"
	toneDuration = 70 * time.Millisecond
	toneRelease  = 40 * time.Millisecond
	toneMinHz    = 20
	toneMaxHz    = 8000
)

// parseTone returns the frequency of a tone reference.
func parseTone(ref string) (float64, bool, error) {
	if !strings.HasPrefix(ref, tonePrefix) {
		return 0, false, nil
	}
	hz, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(ref, tonePrefix), "hz"), 64)
	if err != nil || hz < toneMinHz || hz > toneMaxHz {
		return 0, true, fmt.Errorf("invalid tone %q", ref)
	}
	return hz, true, nil
}

// tone is a finite sine wave with a linear release.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	release  int
	rate     beep.SampleRate
}

func newTone(freq float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		total:   rate.N(toneDuration),
		release: rate.N(toneRelease),
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		vol := 0.5
		if left := t.total - t.position; left < t.release {
			vol *= float64(left) / float64(t.release)
		}
		val := vol * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
