//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable control with an icon glyph and a text label.
type Button struct {
	rect    image.Rectangle
	icon    string
	label   string
	hovered bool
	pressed bool
}

// NewButton places a button at (x, y) with the given size.
func NewButton(x, y, w, h int) *Button {
	return &Button{rect: image.Rect(x, y, x+w, y+h)}
}

// SetState updates the icon glyph and label text.
func (b *Button) SetState(icon, label string) {
	b.icon = icon
	b.label = label
}

// Update tracks hover and press state and reports whether the button was
// clicked this frame. A click completes when the press both starts and
// releases inside the button.
func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = image.Pt(mx, my).In(b.rect)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

// Draw paints the button with the provided icon color.
func (b *Button) Draw(screen *ebiten.Image, iconColor color.NRGBA) {
	var bg color.NRGBA
	switch {
	case b.pressed:
		bg = color.NRGBA{R: 30, G: 34, B: 48, A: 230}
	case b.hovered:
		bg = color.NRGBA{R: 50, G: 56, B: 76, A: 230}
	default:
		bg = color.NRGBA{R: 40, G: 45, B: 62, A: 230}
	}

	x := float32(b.rect.Min.X)
	y := float32(b.rect.Min.Y)
	w := float32(b.rect.Dx())
	h := float32(b.rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.NRGBA{R: 110, G: 120, B: 150, A: 255}, false)

	face := basicfont.Face7x13
	baseline := b.rect.Min.Y + (b.rect.Dy()+face.Ascent-face.Descent)/2
	iconX := b.rect.Min.X + 8
	text.Draw(screen, b.icon, face, iconX, baseline, iconColor)

	labelX := iconX + text.BoundString(face, b.icon).Dx() + 8
	text.Draw(screen, b.label, face, labelX, baseline, color.NRGBA{R: 220, G: 220, B: 230, A: 255})
}

// Rect exposes the button bounds.
func (b *Button) Rect() image.Rectangle { return b.rect }
