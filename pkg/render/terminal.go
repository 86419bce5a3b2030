package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// HalfBlock is the glyph used to pack two framebuffer rows into one terminal
// cell: the foreground paints the upper half, the background the lower.
const HalfBlock = "▀"

// Draw presents the framebuffer on a terminal screen. Each cell in area
// covers one column and two framebuffer rows, so the framebuffer should be
// area.Dx() wide and 2*area.Dy() tall. The picture is scanned top-down.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		if top >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: HalfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.RGBAAt(x, top)),
					Bg: cellColor(fb.RGBAAt(x, top+1)),
				},
			})
		}
	}
}

// cellColor maps fully transparent pixels to the terminal default.
func cellColor(c color.NRGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
