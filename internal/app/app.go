//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/Cuixjnoob/SanShan-Island-star/internal/field"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/mode"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/render"
	"github.com/Cuixjnoob/SanShan-Island-star/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Button placement mirrors the web page, where the toggle is inserted as
// the document's first element: top-left, above the starfield.
const (
	buttonX      = 16
	buttonY      = 16
	buttonWidth  = 150
	buttonHeight = 28
)

// Game adapts the starfield and the mode toggle to the ebiten.Game interface.
type Game struct {
	field   *field.Field
	painter *render.FieldPainter
	modes   *mode.Controller
	button  *ui.Button
	theme   render.Theme

	width  int
	height int

	paused    bool
	tickOnce  bool
	showDebug bool
	seed      int64
}

// New constructs a Game around an initialized field and mode controller.
func New(f *field.Field, modes *mode.Controller, seed int64) *Game {
	g := &Game{
		field:   f,
		painter: render.NewFieldPainter(),
		modes:   modes,
		button:  ui.NewButton(buttonX, buttonY, buttonWidth, buttonHeight),
		theme:   render.ForMode(modes.Enabled()),
		width:   f.Size().W,
		height:  f.Size().H,
		seed:    seed,
	}
	g.syncButton()
	return g
}

func (g *Game) syncButton() {
	g.button.SetState(g.modes.Icon(), g.modes.Label())
}

// Reset regenerates the particle set with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.field.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the field by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	if g.button.Update() {
		g.modes.Toggle()
		g.theme = render.ForMode(g.modes.Enabled())
		g.syncButton()
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		g.field.SetPointer(float64(mx), float64(my))
	} else {
		g.field.ClearPointer()
	}

	if (!g.paused) || g.tickOnce {
		g.field.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the field, the toggle button and the optional debug line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.field, g.theme)

	iconColor := color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	if g.modes.Enabled() {
		iconColor = color.NRGBA{R: 255, G: 64, B: 48, A: 255}
	}
	g.button.Draw(screen, iconColor)

	if g.showDebug {
		msg := fmt.Sprintf("particles: %d  tps: %.1f", len(g.field.Particles()), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, msg, 8, g.height-20)
	}
}

// Layout tracks the window size; a change regenerates the particle set at
// the new density.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
