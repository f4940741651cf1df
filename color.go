package lui

import "image/color"

// Color is a packed 0xAARRGGBB color with straight (non-premultiplied)
// alpha. The zero value is transparent black; constructors default alpha to
// fully opaque.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

// RGBA returns a color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FloatRGBA returns a color from channels in [0, 1]. Values are scaled by 255
// and truncated.
func FloatRGBA(r, g, b, a float64) Color {
	return RGBA(floatChannel(r), floatChannel(g), floatChannel(b), floatChannel(a))
}

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// FRed returns the red channel in [0, 1].
func (c Color) FRed() float64 { return float64(c.Red()) / 255 }

// FGreen returns the green channel in [0, 1].
func (c Color) FGreen() float64 { return float64(c.Green()) / 255 }

// FBlue returns the blue channel in [0, 1].
func (c Color) FBlue() float64 { return float64(c.Blue()) / 255 }

// FAlpha returns the alpha channel in [0, 1].
func (c Color) FAlpha() float64 { return float64(c.Alpha()) / 255 }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00ffffff | Color(a)<<24
}

// WithAlphaFloat returns c with its alpha channel set from a in [0, 1].
func (c Color) WithAlphaFloat(a float64) Color {
	return c.WithAlpha(floatChannel(a))
}

// Brighter moves each color channel toward white by amount in [0, 1].
// Alpha is unchanged.
func (c Color) Brighter(amount float64) Color {
	amount = clamp(amount, 0, 1)
	up := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return RGBA(up(c.Red()), up(c.Green()), up(c.Blue()), c.Alpha())
}

// Darker moves each color channel toward black by amount in [0, 1].
// Alpha is unchanged.
func (c Color) Darker(amount float64) Color {
	amount = clamp(amount, 0, 1)
	down := func(v uint8) uint8 {
		return uint8(float64(v) * (1 - amount))
	}
	return RGBA(down(c.Red()), down(c.Green()), down(c.Blue()), c.Alpha())
}

// RGBA implements image/color.Color. Components are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// ColorFrom converts any image/color.Color.
func ColorFrom(src color.Color) Color {
	n := color.NRGBAModel.Convert(src).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func floatChannel(v float64) uint8 {
	return uint8(clamp(v, 0, 1) * 255)
}
