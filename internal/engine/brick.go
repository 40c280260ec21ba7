package engine

import "github.com/vovakirdan/tui-bricks/internal/core"

// NoAsset marks a texture or sound that could not be resolved.
const NoAsset = -1

// BrickType holds the attributes shared by every brick of one layout key.
// It is immutable once the level is built.
type BrickType struct {
	Key        rune
	Texture    string
	HitPoints  int // 0 = indestructible
	HitSound   string
	BreakSound string
	BreakScore int

	// Asset pool indices, assigned when the level is built.
	TextureIndex    int
	HitSoundIndex   int
	BreakSoundIndex int
}

// Breakable reports whether bricks of this type can be destroyed.
func (t *BrickType) Breakable() bool {
	return t.HitPoints > 0
}

// SoundPlayer plays a sound from the pool by index. Playback is fire-and-forget:
// implementations log failures instead of returning them.
type SoundPlayer interface {
	Play(index int)
}

// nopSounds is used when no audio collaborator is supplied.
type nopSounds struct{}

func (nopSounds) Play(int) {}

// Brick is one grid cell of a level.
type Brick struct {
	typ    *BrickType
	rect   core.Rect
	exists bool
	hp     int
	score  int
}

// NewBrick places a brick of the given type.
func NewBrick(t *BrickType, rect core.Rect) *Brick {
	return &Brick{
		typ:    t,
		rect:   rect,
		exists: true,
		hp:     t.HitPoints,
	}
}

// OnHit applies one ball hit.
func (b *Brick) OnHit(sounds SoundPlayer) {
	b.hp--

	if !b.typ.Breakable() {
		b.hp = 0
		sounds.Play(b.typ.HitSoundIndex)
		return
	}

	if b.hp <= 0 {
		b.exists = false
		b.score = b.typ.BreakScore
		sounds.Play(b.typ.BreakSoundIndex)
		return
	}

	sounds.Play(b.typ.HitSoundIndex)
}

// Rect returns the brick bounds in pixels.
func (b *Brick) Rect() core.Rect { return b.rect }

// Exists reports whether the brick is still on the field.
func (b *Brick) Exists() bool { return b.exists }

// Breakable reports whether the brick can be destroyed.
func (b *Brick) Breakable() bool { return b.typ.Breakable() }

// Score is the payout of this brick; non-zero only once it has broken.
func (b *Brick) Score() int { return b.score }

// HitPoints returns the hits left before the brick breaks.
func (b *Brick) HitPoints() int { return b.hp }

// Key returns the layout character of the brick's type.
func (b *Brick) Key() rune { return b.typ.Key }

func (b *Brick) TextureIndex() int    { return b.typ.TextureIndex }
func (b *Brick) HitSoundIndex() int   { return b.typ.HitSoundIndex }
func (b *Brick) BreakSoundIndex() int { return b.typ.BreakSoundIndex }
