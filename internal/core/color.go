package core

import "fmt"

// RGB is a 24-bit color shared by every frontend.
type RGB struct {
	R, G, B uint8
}

// Palette used by the runner scene.
var (
	White        = RGB{255, 255, 255}
	Black        = RGB{0, 0, 0}
	Gray         = RGB{128, 128, 128}
	Green        = RGB{0, 128, 0}
	DarkGreen    = RGB{0, 100, 0}
	Brown        = RGB{139, 69, 19}
	SkyBlue      = RGB{135, 206, 235}
	MidnightBlue = RGB{25, 25, 112}
	Orange       = RGB{255, 165, 0}
	Red          = RGB{255, 0, 0}
)

// LerpRGB blends a toward b by t in [0, 1]. Channels are truncated, not rounded.
func LerpRGB(a, b RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	return RGB{
		R: uint8(Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(Lerp(float64(a.B), float64(b.B), t)),
	}
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale returns the color with each channel multiplied by f and clamped.
func (c RGB) Scale(f float64) RGB {
	scale := func(v uint8) uint8 {
		return uint8(ClampF(float64(v)*f, 0, 255))
	}
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Contrast returns black or white, whichever reads better on c.
func (c RGB) Contrast() RGB {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma < 110 {
		return White
	}
	return Black
}
