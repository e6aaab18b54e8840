// Package holding implements the visual core of a hold-to-record circular
// button: an expanding primary disc with an optional halo ring, an icon that
// can swap to a cancel icon, and the transition animations between these
// states.
//
// The package deliberately stops at the drawable. Deciding when to expand or
// collapse (touch tracking, slop detection, layout) belongs to the host,
// which drives the drawable through its control surface and implements
// [Listener] to hear about transitions.
package holding

import (
	"image"
	"time"

	"github.com/go-drift/holdingbutton/pkg/animation"
	"github.com/go-drift/holdingbutton/pkg/graphics"
)

// minExpandedRadiusFactor is the fraction of the full radius rendered at
// expand progress zero.
const minExpandedRadiusFactor = 0.3

// minIconScale is the icon scale at the start of the cancel-toggle pop.
const minIconScale = 0.6

const (
	expandDuration      = 150 * time.Millisecond
	collapseDuration    = 150 * time.Millisecond
	cancelBlendDuration = 200 * time.Millisecond
	iconPopDuration     = 200 * time.Millisecond
)

// Appearance defaults.
const (
	DefaultColor        = graphics.Color(0xFF3949AB)
	DefaultCancelColor  = graphics.Color(0xFFE53935)
	DefaultRadius       = 120.0
	DefaultSecondRadius = 20.0
	DefaultSecondAlpha  = 100
)

// colorRole tags which of the two role colors a blend endpoint refers to.
// Keeping the selection on a named type rather than a raw bool avoids
// swapping source and target when a cancel toggle restarts the blend.
type colorRole int

const (
	roleNormal colorRole = iota
	roleCancel
)

func (r colorRole) opposite() colorRole {
	if r == roleNormal {
		return roleCancel
	}
	return roleNormal
}

// iconMask holds a bitmap drawn as an alpha mask for a flat-white icon,
// together with the transform keeping it centered and scaled on the disc.
type iconMask struct {
	width  float64
	height float64
	shader *graphics.ImageShader
	paint  graphics.Paint
}

func newIconMask(img image.Image) *iconMask {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	shader := &graphics.ImageShader{Image: img, Matrix: graphics.IdentityMatrix()}
	return &iconMask{
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
		shader: shader,
		paint: graphics.Paint{
			AntiAlias: true,
			Shader:    shader,
			Filter:    &graphics.ColorFilter{Color: graphics.ColorWhite, Mode: graphics.BlendSrcIn},
		},
	}
}

// updateMatrix scales the bitmap about the button center and translates it
// so its center stays pinned there for any scale.
func (m *iconMask) updateMatrix(centerX, centerY, scale float64) {
	var mat graphics.Matrix
	mat.SetScale(scale, scale)
	inv := 1 - scale
	mat.PostTranslate(
		centerX-m.width/2+m.width/2*inv,
		centerY-m.height/2+m.height/2*inv,
	)
	m.shader.Matrix = mat
}

// Drawable is the mutable render model of the holding button.
//
// All control operations, animation ticks, and draws are expected to happen
// on a single render/update thread; the drawable performs no locking.
// Control operations never block: they schedule animations and return, and
// progress arrives through subsequent [animation.StepTickers] frames.
type Drawable struct {
	paint       graphics.Paint
	secondPaint graphics.Paint

	icon       *iconMask
	cancelIcon *iconMask

	isExpanded bool
	isCancel   bool

	// Animation slots. Each holds at most one live animation; starting a
	// replacement cancels the previous occupant silently.
	extentAnim *animation.Animation
	colorAnim  *animation.Animation
	iconAnim   *animation.Animation

	radius       float64
	secondRadius float64

	expandedScaleFactor float64
	iconScaleFactor     float64

	defaultColor graphics.Color
	cancelColor  graphics.Color
	secondAlpha  uint8

	listener Listener
	onRedraw func()
}

// NewDrawable creates a drawable with default appearance, fully collapsed.
func NewDrawable() *Drawable {
	d := &Drawable{
		radius:          DefaultRadius,
		secondRadius:    DefaultSecondRadius,
		iconScaleFactor: 1,
		defaultColor:    DefaultColor,
		cancelColor:     DefaultCancelColor,
		secondAlpha:     DefaultSecondAlpha,
	}
	d.paint = graphics.NewPaint(d.defaultColor)
	d.secondPaint = graphics.NewPaint(d.defaultColor.WithAlpha8(d.secondAlpha))
	return d
}

// Draw renders the current state onto the canvas: halo disc, primary disc,
// then icon, back to front. It is pure given the current state and canvas
// size; no animation stepping happens here.
//
// Nothing is rendered while the drawable is not expanded. Collapse does not
// clear the expanded flag when its animation finishes; hiding the fully
// collapsed button is the host's decision (typically from OnCollapse).
func (d *Drawable) Draw(canvas graphics.Canvas) {
	center := canvas.Size().Center()
	if !d.isExpanded {
		return
	}

	if d.secondRadius > 0 {
		canvas.DrawCircle(center, d.radius+d.secondRadius, d.secondPaint)
	}

	currentRadius := d.radius * (minExpandedRadiusFactor + (1-minExpandedRadiusFactor)*d.expandedScaleFactor)
	canvas.DrawCircle(center, currentRadius, d.paint)

	if mask := d.selectedIcon(); mask != nil {
		mask.updateMatrix(center.X, center.Y, d.iconScaleFactor)
		canvas.DrawRect(graphics.RectFromCenter(center, mask.width, mask.height), mask.paint)
	}
}

// selectedIcon picks the cancel icon while the cancel role is active and it
// is present, otherwise the normal icon if present.
func (d *Drawable) selectedIcon() *iconMask {
	if d.isCancel && d.cancelIcon != nil {
		return d.cancelIcon
	}
	return d.icon
}

// Expand marks the drawable expanded and animates the disc from its current
// extent to full size. Completion fires OnExpand.
func (d *Drawable) Expand() {
	d.notifyBeforeExpand()
	d.isExpanded = true
	d.startExtent(0, 1, expandDuration, d.notifyExpanded)
}

// ClickExpand behaves like Expand but reports completion through
// OnClickExpand, letting hosts distinguish a tap-triggered expand from a
// hold-triggered one.
func (d *Drawable) ClickExpand() {
	d.notifyBeforeExpand()
	d.isExpanded = true
	d.startExtent(0, 1, expandDuration, d.notifyClickExpanded)
}

// Collapse animates the disc from its current extent down to its minimum.
// Unlike expand, which always replays from zero, a collapse picks up at the
// current extent so preempting a half-finished expand shrinks from where the
// disc is. Completion fires OnCollapse. The expanded flag stays set; see
// Draw.
func (d *Drawable) Collapse() {
	d.notifyBeforeCollapse()
	d.startExtent(d.expandedScaleFactor, 0, collapseDuration, d.notifyCollapsed)
}

// ClickCollapse behaves like Collapse but reports completion through
// OnClickCollapse.
func (d *Drawable) ClickCollapse() {
	d.notifyBeforeCollapse()
	d.startExtent(d.expandedScaleFactor, 0, collapseDuration, d.notifyClickCollapsed)
}

func (d *Drawable) startExtent(from, target float64, duration time.Duration, onComplete func()) {
	if d.extentAnim != nil {
		d.extentAnim.Cancel()
	}
	d.extentAnim = animation.Start(from, target, duration, animation.Accelerate,
		func(value float64) {
			d.expandedScaleFactor = value
			d.invalidate()
		},
		onComplete,
	)
}

// SetCancel toggles the cancel appearance. Toggling restarts the color blend
// from the outgoing role color to the incoming one and replays the icon pop,
// even when toggled back before the previous blend finished. Calling with
// the current value is a no-op.
func (d *Drawable) SetCancel(cancel bool) {
	if d.isCancel == cancel {
		return
	}
	d.isCancel = cancel

	target := roleNormal
	if cancel {
		target = roleCancel
	}
	// Blend endpoints are always the role colors, never the mid-blend paint
	// color, so a toggle-back lands exactly on the original color.
	from := d.roleColor(target.opposite())
	to := d.roleColor(target)

	if d.colorAnim != nil {
		d.colorAnim.Cancel()
	}
	d.colorAnim = animation.Start(0, 1, cancelBlendDuration, animation.Linear,
		func(t float64) {
			color := graphics.Blend(from, to, t)
			d.paint.Color = color
			d.secondPaint.Color = color.WithAlpha8(d.secondAlpha)
			d.invalidate()
		},
		nil,
	)

	if d.iconAnim != nil {
		d.iconAnim.Cancel()
	}
	d.iconAnim = animation.Start(minIconScale, 1, iconPopDuration, animation.Linear,
		func(value float64) {
			d.iconScaleFactor = value
		},
		nil,
	)
}

func (d *Drawable) roleColor(role colorRole) graphics.Color {
	if role == roleCancel {
		return d.cancelColor
	}
	return d.defaultColor
}

// Reset immediately restores the collapsed, non-cancel resting state with
// default paint colors. No animation runs; in-flight animations are left to
// their own fate and have no visible effect once the expanded flag is clear.
func (d *Drawable) Reset() {
	d.isExpanded = false
	d.isCancel = false
	d.paint.Color = d.defaultColor
	d.secondPaint.Color = d.defaultColor.WithAlpha8(d.secondAlpha)
}

// IsExpanded reports whether the disc is shown expanded. It becomes true as
// soon as an expand starts and is cleared only by Reset.
func (d *Drawable) IsExpanded() bool {
	return d.isExpanded
}

// IsCancel reports whether the cancel appearance is active.
func (d *Drawable) IsCancel() bool {
	return d.isCancel
}

// Radius returns the base expanded radius.
func (d *Drawable) Radius() float64 {
	return d.radius
}

// SetRadius sets the base expanded radius.
func (d *Drawable) SetRadius(radius float64) {
	d.radius = radius
	d.invalidate()
}

// Color returns the primary (non-cancel) color.
func (d *Drawable) Color() graphics.Color {
	return d.defaultColor
}

// SetColor sets the primary color. The live disc and halo repaint
// immediately only while the cancel appearance is inactive; otherwise the
// new color takes effect once cancel is toggled off.
func (d *Drawable) SetColor(color graphics.Color) {
	d.defaultColor = color
	if !d.isCancel {
		d.paint.Color = color
		d.secondPaint.Color = color.WithAlpha8(d.secondAlpha)
	}
	d.invalidate()
}

// CancelColor returns the cancel color.
func (d *Drawable) CancelColor() graphics.Color {
	return d.cancelColor
}

// SetCancelColor sets the cancel color, repainting the live disc immediately
// only while the cancel appearance is active.
func (d *Drawable) SetCancelColor(color graphics.Color) {
	d.cancelColor = color
	if d.isCancel {
		d.paint.Color = color
	}
	d.invalidate()
}

// SetIcon sets the normal icon bitmap. A nil bitmap clears the icon; the
// cancel icon is unaffected either way.
func (d *Drawable) SetIcon(img image.Image) {
	d.icon = newIconMask(img)
	d.invalidate()
}

// SetCancelIcon sets the cancel icon bitmap. A nil bitmap clears it.
func (d *Drawable) SetCancelIcon(img image.Image) {
	d.cancelIcon = newIconMask(img)
	d.invalidate()
}

// SecondAlpha returns the halo alpha byte.
func (d *Drawable) SecondAlpha() uint8 {
	return d.secondAlpha
}

// SetSecondAlpha stores the halo alpha byte. The stored value is applied to
// the halo paint on the next color event (SetColor, SetCancel blend, Reset).
func (d *Drawable) SetSecondAlpha(alpha uint8) {
	d.secondAlpha = alpha
	d.invalidate()
}

// SecondRadius returns the halo radius added outside the base radius.
func (d *Drawable) SecondRadius() float64 {
	return d.secondRadius
}

// SetSecondRadius sets the halo radius. Zero disables the halo disc.
func (d *Drawable) SetSecondRadius(radius float64) {
	d.secondRadius = radius
	d.invalidate()
}

// SetAlpha applies an overall alpha byte to the primary disc paint.
func (d *Drawable) SetAlpha(alpha uint8) {
	d.paint.Color = d.paint.Color.WithAlpha8(alpha)
	d.invalidate()
}

// IntrinsicSize returns the natural size of the fully expanded button
// including the halo.
func (d *Drawable) IntrinsicSize() graphics.Size {
	side := 2 * (d.radius + d.secondRadius)
	return graphics.Size{Width: side, Height: side}
}

// Dispose cancels any in-flight animations. Call when discarding the
// drawable so no tickers keep running in the host frame loop. No completion
// callbacks fire.
func (d *Drawable) Dispose() {
	for _, anim := range []*animation.Animation{d.extentAnim, d.colorAnim, d.iconAnim} {
		if anim != nil {
			anim.Cancel()
		}
	}
	d.extentAnim, d.colorAnim, d.iconAnim = nil, nil, nil
}

// SetListener sets the lifecycle listener, replacing any previous one.
// A nil listener disables notifications.
func (d *Drawable) SetListener(listener Listener) {
	d.listener = listener
}

// SetOnRedraw sets the callback invoked whenever the drawable needs to be
// repainted (each animation tick and most property changes), replacing any
// previous one.
func (d *Drawable) SetOnRedraw(fn func()) {
	d.onRedraw = fn
}

func (d *Drawable) invalidate() {
	if d.onRedraw != nil {
		d.onRedraw()
	}
}

func (d *Drawable) notifyBeforeExpand() {
	if d.listener != nil {
		d.listener.OnBeforeExpand()
	}
}

func (d *Drawable) notifyExpanded() {
	if d.listener != nil {
		d.listener.OnExpand()
	}
}

func (d *Drawable) notifyClickExpanded() {
	if d.listener != nil {
		d.listener.OnClickExpand()
	}
}

func (d *Drawable) notifyBeforeCollapse() {
	if d.listener != nil {
		d.listener.OnBeforeCollapse()
	}
}

func (d *Drawable) notifyCollapsed() {
	if d.listener != nil {
		d.listener.OnCollapse(d.isCancel)
	}
}

func (d *Drawable) notifyClickCollapsed() {
	if d.listener != nil {
		d.listener.OnClickCollapse()
	}
}
