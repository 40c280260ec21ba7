// Package assets owns the texture and sound pools. Level files refer to
// assets by path; the pools load each path once and hand out stable indices
// that the engine stores on brick types.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// Texture is a loaded texture reduced to one terminal color.
type Texture struct {
	Ref     string
	Color   core.Color
	Average core.RGB
}

// TexturePool loads textures on demand and deduplicates them by reference.
type TexturePool struct {
	root     string
	index    map[string]int
	textures []Texture
	logger   *log.Logger
}

// NewTexturePool creates a pool resolving file references against root.
func NewTexturePool(root string, logger *log.Logger) *TexturePool {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TexturePool{
		root:   root,
		index:  make(map[string]int),
		logger: logger,
	}
}

// Load returns the index of the texture named by ref, loading it on first
// use. A reference is either a color ("red", "#ff8700") or an image path.
// Failures are logged and yield engine.NoAsset.
func (p *TexturePool) Load(ref string) int {
	if i, ok := p.index[ref]; ok {
		return i
	}

	tex, err := p.load(ref)
	if err != nil {
		p.logger.Warn("texture not loaded", "ref", ref, "err", err)
		return engine.NoAsset
	}

	i := len(p.textures)
	p.textures = append(p.textures, tex)
	p.index[ref] = i
	p.logger.Debug("texture loaded", "ref", ref, "index", i, "color", tex.Color)
	return i
}

// TextureIndex implements engine.Assets.
func (p *TexturePool) TextureIndex(ref string) int {
	return p.Load(ref)
}

// Get returns the texture at index. Out-of-range lookups are logged.
func (p *TexturePool) Get(index int) (Texture, bool) {
	if index < 0 || index >= len(p.textures) {
		if index != engine.NoAsset {
			p.logger.Warn("texture index out of range", "index", index, "size", len(p.textures))
		}
		return Texture{}, false
	}
	return p.textures[index], true
}

// Color returns the terminal color of the texture at index, or
// core.ColorDefault when there is none.
func (p *TexturePool) Color(index int) core.Color {
	tex, ok := p.Get(index)
	if !ok {
		return core.ColorDefault
	}
	return tex.Color
}

// Len returns the number of loaded textures.
func (p *TexturePool) Len() int {
	return len(p.textures)
}

func (p *TexturePool) load(ref string) (Texture, error) {
	if ref == "" {
		return Texture{}, fmt.Errorf("empty texture reference")
	}
	if c, ok := core.ParseColor(ref); ok {
		return Texture{Ref: ref, Color: c}, nil
	}

	f, err := os.Open(p.resolve(ref))
	if err != nil {
		return Texture{}, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("decoding texture: %w", err)
	}

	avg, opaque := averageColor(img)
	tex := Texture{Ref: ref, Average: avg, Color: core.ColorDefault}
	if opaque {
		tex.Color = core.NearestColor(avg)
	}
	p.logger.Debug("texture decoded", "ref", ref, "format", format, "bounds", img.Bounds())
	return tex, nil
}

func (p *TexturePool) resolve(ref string) string {
	if filepath.IsAbs(ref) || p.root == "" {
		return ref
	}
	return filepath.Join(p.root, ref)
}

// averageColor returns the alpha-weighted mean color of img, and false when
// every pixel is fully transparent.
func averageColor(img image.Image) (core.RGB, bool) {
	var r, g, b, a uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// premultiplied, 16 bits per channel
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			b += uint64(pb)
			a += uint64(pa)
		}
	}
	if a == 0 {
		return core.RGB{}, false
	}
	scale := func(v uint64) uint8 {
		return uint8(v * 255 / a) //#nosec G115 -- v <= a
	}
	return core.RGB{R: scale(r), G: scale(g), B: scale(b)}, true
}
