package engine

import "github.com/vovakirdan/tui-bricks/internal/core"

// Colors used for the solid-filled dynamic objects.
const (
	PaddleColor = core.ColorBrightRed
	BallColor   = core.ColorBrightBlue
)

// Renderer draws level geometry. It is implemented by the platform layer;
// rectangles are in pixel space.
type Renderer interface {
	FillRect(r core.Rect, c core.Color)
	DrawTexture(index int, r core.Rect)
}

// DynamicObject is the capability set shared by the paddle and the ball.
type DynamicObject interface {
	SetInitialPosition(x, y int)
	SetSize(w, h int)
	SetSpeed(speed int)
	Rect() core.Rect
	Speed() int
	Render(r Renderer)
}

// body is the state common to every dynamic object.
type body struct {
	rect   core.Rect
	startX int
	startY int
	speed  int // pixels moved per step
}

// SetInitialPosition places the object and records the spot it returns to
// after a lost life.
func (b *body) SetInitialPosition(x, y int) {
	b.rect.X, b.rect.Y = x, y
	b.startX, b.startY = x, y
}

func (b *body) SetSize(w, h int) {
	b.rect.W, b.rect.H = w, h
}

func (b *body) SetSpeed(speed int) {
	b.speed = speed
}

func (b *body) Rect() core.Rect { return b.rect }

func (b *body) Speed() int { return b.speed }

// InitialPosition returns the recorded start position.
func (b *body) InitialPosition() (int, int) {
	return b.startX, b.startY
}

func (b *body) resetPosition() {
	b.rect.X, b.rect.Y = b.startX, b.startY
}

// Paddle is moved by the player along the bottom of the field.
type Paddle struct {
	body
}

// Move shifts the paddle by its speed for each held direction and clamps it
// inside [0, windowW-W].
func (p *Paddle) Move(in core.InputFrame, windowW int) {
	if in.Has(core.ActionLeft) {
		p.rect.X -= p.speed
	}
	if in.Has(core.ActionRight) {
		p.rect.X += p.speed
	}
	p.rect.X = core.Clamp(p.rect.X, 0, core.Max(0, windowW-p.rect.W))
}

func (p *Paddle) Render(r Renderer) {
	r.FillRect(p.rect, PaddleColor)
}

// Velocity is the ball displacement per step, in pixels.
type Velocity struct {
	X, Y int
}

// Ball moves by its velocity every frame. Its scalar speed is the magnitude
// the velocity is rebuilt from on paddle bounces.
type Ball struct {
	body
	velocity Velocity
	startVel Velocity
}

// SetInitialVelocity sets the velocity and records it for resets.
func (b *Ball) SetInitialVelocity(v Velocity) {
	b.velocity = v
	b.startVel = v
}

func (b *Ball) SetVelocity(v Velocity) { b.velocity = v }

func (b *Ball) Velocity() Velocity { return b.velocity }

// UpdatePosition advances the ball by its velocity.
func (b *Ball) UpdatePosition() {
	b.rect.X += b.velocity.X
	b.rect.Y += b.velocity.Y
}

func (b *Ball) reset() {
	b.resetPosition()
	b.velocity = b.startVel
}

func (b *Ball) Render(r Renderer) {
	r.FillRect(b.rect, BallColor)
}

var (
	_ DynamicObject = (*Paddle)(nil)
	_ DynamicObject = (*Ball)(nil)
)
