package field

import (
	"github.com/Cuixjnoob/SanShan-Island-star/internal/core"
)

// Particle is one moving star in the animated field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Config holds the tunables governing particle density and interaction.
type Config struct {
	// Density is the viewport area, in square pixels, per particle.
	Density float64
	// LinkThreshold is the squared distance below which two particles
	// are connected by a peer link.
	LinkThreshold float64
	// PointerThreshold is the squared distance below which a particle
	// interacts with the pointer.
	PointerThreshold float64
	// Attraction is the fraction of the particle-to-pointer delta
	// applied per step while inside the interaction radius.
	Attraction float64

	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64
}

// DefaultConfig returns the stock starfield tuning.
func DefaultConfig() Config {
	return Config{
		Density:          8000,
		LinkThreshold:    6000,
		PointerThreshold: 20000,
		Attraction:       0.03,
		MinRadius:        0.5,
		MaxRadius:        2.0,
		MaxSpeed:         0.5,
	}
}

// linkWeight and pointerWeight cap the visual weight of rendered links.
const (
	linkWeight    = 0.2
	pointerWeight = 0.6
)

// Link is a rendered connection between the particles at indices A and B.
// Alpha is the final draw opacity, already scaled by the peer-link cap.
type Link struct {
	A, B  int
	Alpha float64
}

// PointerLink connects the particle at Index to the pointer position.
// Alpha is the final draw opacity, already scaled by the pointer cap.
type PointerLink struct {
	Index int
	Alpha float64
}

// Field owns the particle set, the viewport bounds and the pointer state.
// It is deterministic for a given seed and sequence of operations, and has
// no dependency on any renderer or scheduler.
type Field struct {
	cfg  Config
	size core.Size
	seed int64
	rng  *core.RNG

	particles []Particle

	pointerX      float64
	pointerY      float64
	pointerActive bool
}

// New constructs a Field for a w*h viewport and populates it.
func New(cfg Config, w, h int, seed int64) *Field {
	f := &Field{cfg: cfg, seed: seed, rng: core.NewRNG(seed)}
	f.Resize(w, h)
	return f
}

// Size returns the current viewport dimensions.
func (f *Field) Size() core.Size { return f.size }

// Particles exposes the live particle slice. The slice is replaced wholesale
// on Resize and Reset; callers must not retain it across those calls.
func (f *Field) Particles() []Particle { return f.particles }

// Reset reseeds the generator and regenerates the particle set in place.
func (f *Field) Reset(seed int64) {
	f.seed = seed
	f.rng = core.NewRNG(seed)
	f.populate()
}

// Resize sets the viewport bounds and replaces the entire particle set.
// Count is floor(area / Density); individual particles are never added or
// removed outside a full regeneration.
func (f *Field) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.size = core.Size{W: w, H: h}
	f.populate()
}

func (f *Field) populate() {
	count := int(float64(f.size.Area()) / f.cfg.Density)
	f.particles = make([]Particle, count)
	w := float64(f.size.W)
	h := float64(f.size.H)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Range(0, w),
			Y:      f.rng.Range(0, h),
			VX:     f.rng.Symmetric(f.cfg.MaxSpeed),
			VY:     f.rng.Symmetric(f.cfg.MaxSpeed),
			Radius: f.rng.Range(f.cfg.MinRadius, f.cfg.MaxRadius),
		}
	}
}

// SetPointer records the pointer position in viewport coordinates.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX = x
	f.pointerY = y
	f.pointerActive = true
}

// ClearPointer marks the pointer as absent, disabling attraction and
// pointer links until the next SetPointer.
func (f *Field) ClearPointer() {
	f.pointerActive = false
}

// Pointer returns the pointer position and whether one is active.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.pointerActive
}

// Step advances the field by one frame. For each particle, in array order:
// position advances by velocity; a velocity component is reflected when the
// updated position leaves the viewport (the position itself is not clamped,
// so a particle may overshoot for at most one frame); then, if a pointer is
// active and the particle sits inside the interaction radius but outside the
// inner fifth of it, the particle is pulled toward the pointer by the
// attraction fraction of the delta. Pulling stops inside the inner radius,
// which is what produces the stable-orbit look at close range.
func (f *Field) Step() {
	w := float64(f.size.W)
	h := float64(f.size.H)
	inner := f.cfg.PointerThreshold / 5
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > w {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > h {
			p.VY = -p.VY
		}
		if !f.pointerActive {
			continue
		}
		dx := f.pointerX - p.X
		dy := f.pointerY - p.Y
		d2 := dx*dx + dy*dy
		if d2 < f.cfg.PointerThreshold && d2 > inner {
			p.X += dx * f.cfg.Attraction
			p.Y += dy * f.cfg.Attraction
		}
	}
}

// PointerLinks appends a link for every particle within the pointer
// interaction radius, reusing buf. Alpha fades linearly with the squared
// distance ratio and is capped at the pointer weight.
func (f *Field) PointerLinks(buf []PointerLink) []PointerLink {
	buf = buf[:0]
	if !f.pointerActive {
		return buf
	}
	for i := range f.particles {
		p := &f.particles[i]
		dx := f.pointerX - p.X
		dy := f.pointerY - p.Y
		d2 := dx*dx + dy*dy
		if d2 < f.cfg.PointerThreshold {
			alpha := (1 - d2/f.cfg.PointerThreshold) * pointerWeight
			buf = append(buf, PointerLink{Index: i, Alpha: alpha})
		}
	}
	return buf
}

// Links appends a link for every unordered particle pair closer than the
// peer-link threshold, reusing buf. Each pair is evaluated exactly once.
//
// This is intentionally O(n^2) per frame. The density rule bounds n by
// viewport area (a 1920x1080 viewport yields ~260 particles, ~34k pair
// checks), which fits comfortably in a frame budget at this scale. The
// visual density of the web of links depends on the exhaustive sweep, so a
// spatial index would change the look, not just the cost.
func (f *Field) Links(buf []Link) []Link {
	buf = buf[:0]
	n := len(f.particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := f.particles[i].X - f.particles[j].X
			dy := f.particles[i].Y - f.particles[j].Y
			d2 := dx*dx + dy*dy
			if d2 < f.cfg.LinkThreshold {
				alpha := (1 - d2/f.cfg.LinkThreshold) * linkWeight
				buf = append(buf, Link{A: i, B: j, Alpha: alpha})
			}
		}
	}
	return buf
}

// InBounds reports whether p lies within [0, w] x [0, h], with slack for
// the single-frame overshoot a reflection permits.
func (f *Field) InBounds(p Particle, slack float64) bool {
	w := float64(f.size.W)
	h := float64(f.size.H)
	return p.X >= -slack && p.X <= w+slack && p.Y >= -slack && p.Y <= h+slack
}

// MaxOvershoot returns the largest per-axis distance a particle can travel
// past a boundary in one frame before the reflection pulls it back.
func (f *Field) MaxOvershoot() float64 {
	return f.cfg.MaxSpeed
}
