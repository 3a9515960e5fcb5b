package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/they4kman/sweepodds/engine"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var ErrCellTooSmall = errors.New("cells are too small to label")

const MinCellSize = 16

var (
	gridColor  = colornames.Dimgray
	knownColor = colornames.Gainsboro
	labelColor = colornames.Black
	safeColor  = colornames.Green
	riskyColor = colornames.Red
	mineColor  = colornames.Darkred
)

// Heatmap draws the engine's board as a PNG, cellSize pixels per cell.
// Unrevealed cells are shaded from green to red by their mine probability,
// presumed mines are dark red and revealed cells show their mine count.
func Heatmap(w io.Writer, estimator *engine.Engine, cellSize int) error {
	if cellSize < MinCellSize {
		return fmt.Errorf("%w: %d pixels, need at least %d", ErrCellTooSmall, cellSize, MinCellSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, estimator.Width()*cellSize, estimator.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(gridColor), image.Point{}, draw.Src)

	for y := 0; y < estimator.Height(); y++ {
		for x := 0; x < estimator.Width(); x++ {
			cell, _ := estimator.Cell(x, y)
			bounds := image.Rect(x*cellSize+1, y*cellSize+1, (x+1)*cellSize-1, (y+1)*cellSize-1)
			draw.Draw(img, bounds, image.NewUniform(cellColor(cell)), image.Point{}, draw.Src)

			if cell.IsKnown() && cell.MinesAround() > 0 {
				label(img, bounds, fmt.Sprint(cell.MinesAround()))
			}
		}
	}

	return png.Encode(w, img)
}

func cellColor(cell engine.Cell) color.RGBA {
	switch {
	case cell.IsKnown():
		return knownColor
	case cell.IsPresumedMine():
		return mineColor
	default:
		return blend(safeColor, riskyColor, cell.Probability())
	}
}

func blend(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: 0xff,
	}
}

// label centers text inside bounds
func label(img draw.Image, bounds image.Rectangle, text string) {
	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}

	width := drawer.MeasureString(text).Ceil()
	x := bounds.Min.X + (bounds.Dx()-width)/2
	y := bounds.Min.Y + (bounds.Dy()+face.Ascent-face.Descent)/2
	drawer.Dot = fixed.P(x, y)
	drawer.DrawString(text)
}
