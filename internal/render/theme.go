package render

import (
	"image/color"
	"math"
)

// Theme groups the colors for one display mode.
type Theme struct {
	Background color.NRGBA
	Star       color.NRGBA
	Link       color.NRGBA
}

// Normal is the default night-sky look: translucent white stars on
// near-black.
func Normal() Theme {
	return Theme{
		Background: color.NRGBA{R: 8, G: 10, B: 20, A: 255},
		Star:       color.NRGBA{R: 255, G: 255, B: 255, A: 204},
		Link:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// RedLight preserves night vision: everything shifts into the red channel.
func RedLight() Theme {
	return Theme{
		Background: color.NRGBA{R: 18, G: 2, B: 2, A: 255},
		Star:       color.NRGBA{R: 255, G: 64, B: 48, A: 204},
		Link:       color.NRGBA{R: 255, G: 64, B: 48, A: 255},
	}
}

// ForMode selects the theme for the current red-light flag.
func ForMode(red bool) Theme {
	if red {
		return RedLight()
	}
	return Normal()
}

// LinkColor returns the link color faded to the given opacity in [0, 1].
func (t Theme) LinkColor(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c := t.Link
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}
