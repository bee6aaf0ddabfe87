//go:build ebiten

package render

import (
	"github.com/Cuixjnoob/SanShan-Island-star/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldPainter draws one frame of the starfield: background, particles,
// pointer links, then peer links. Link buffers are reused across frames.
type FieldPainter struct {
	links        []field.Link
	pointerLinks []field.PointerLink
}

// NewFieldPainter allocates a painter.
func NewFieldPainter() *FieldPainter {
	return &FieldPainter{}
}

// Draw clears dst to the theme background and paints the field onto it.
func (fp *FieldPainter) Draw(dst *ebiten.Image, f *field.Field, th Theme) {
	dst.Fill(th.Background)

	particles := f.Particles()
	for i := range particles {
		p := &particles[i]
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), th.Star, true)
	}

	px, py, active := f.Pointer()
	if active {
		fp.pointerLinks = f.PointerLinks(fp.pointerLinks)
		for _, l := range fp.pointerLinks {
			p := &particles[l.Index]
			vector.StrokeLine(dst, float32(p.X), float32(p.Y), float32(px), float32(py),
				1, th.LinkColor(l.Alpha), true)
		}
	}

	fp.links = f.Links(fp.links)
	for _, l := range fp.links {
		a := &particles[l.A]
		b := &particles[l.B]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			1, th.LinkColor(l.Alpha), true)
	}
}
