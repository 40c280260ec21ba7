package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

func TestSoundPoolTones(t *testing.T) {
	pool := NewSoundPool("", 1, false, nil)

	hit := pool.Load("tone:440")
	brk := pool.Load("tone:880hz")
	again := pool.SoundIndex("tone:440")

	assert.Equal(t, 0, hit)
	assert.Equal(t, 1, brk)
	assert.Equal(t, hit, again, "sounds are deduplicated by reference")
	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, SampleRate.N(toneDuration), pool.buffers[hit].Len())
}

func TestSoundPoolFailures(t *testing.T) {
	pool := NewSoundPool(t.TempDir(), 1, false, nil)

	assert.Equal(t, engine.NoAsset, pool.Load("tone:abc"))
	assert.Equal(t, engine.NoAsset, pool.Load("tone:5"))
	assert.Equal(t, engine.NoAsset, pool.Load("hit.mp3"))
	assert.Equal(t, engine.NoAsset, pool.Load("missing.wav"))
	assert.Equal(t, 0, pool.Len())
}

func TestSoundPoolDecodesAndResamplesWAV(t *testing.T) {
	dir := t.TempDir()
	srcRate := beep.SampleRate(22050)
	n := srcRate.N(toneDuration)

	f, err := os.Create(filepath.Join(dir, "hit.wav"))
	require.NoError(t, err)
	err = wav.Encode(f, newTone(440, srcRate), beep.Format{SampleRate: srcRate, NumChannels: 2, Precision: 2})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	pool := NewSoundPool(dir, 1, false, nil)
	i := pool.Load("hit.wav")
	require.NotEqual(t, engine.NoAsset, i)

	got := pool.buffers[i].Len()
	assert.Greater(t, got, n*3/2, "22.05kHz input should roughly double in length")
	assert.Less(t, got, n*5/2)
}

func TestSoundPoolPlay(t *testing.T) {
	pool := NewSoundPool("", 0.5, false, nil)
	i := pool.Load("tone:440")

	pool.Play(i)
	assert.Equal(t, 0, pool.Playing(), "disabled pool is silent")

	pool.SetEnabled(true)
	assert.True(t, pool.Enabled())
	pool.Play(i)
	assert.Equal(t, 0, pool.Playing(), "nothing queues before the device starts")

	// Stand in for a running device; the mixer is only read, never streamed.
	pool.started = true
	pool.Play(i)
	pool.Play(i)
	pool.Play(engine.NoAsset)
	pool.Play(42)
	assert.Equal(t, 2, pool.Playing())
}

func TestSoundPoolStartDisabledIsNoop(t *testing.T) {
	pool := NewSoundPool("", 1, false, nil)
	assert.NoError(t, pool.Start())
	pool.Close()
}
