package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/lifesim/internal/life"
)

var gifPalette = color.Palette{color.Black, color.RGBA{G: 0xff, A: 0xff}}

// Frame renders one generation as a paletted image, scale pixels per cell.
func Frame(g *life.Grid, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	img := image.NewPaletted(image.Rect(0, 0, g.Cols()*scale, g.Rows()*scale), gifPalette)
	g.Each(func(i, j int, alive bool) {
		if !alive {
			return
		}
		for py := 0; py < scale; py++ {
			for px := 0; px < scale; px++ {
				img.SetColorIndex(j*scale+px, i*scale+py, 1)
			}
		}
	})
	return img
}

// EncodeGIF writes the trajectory as a looping animation. delay is in
// hundredths of a second per frame.
func EncodeGIF(w io.Writer, traj *life.Trajectory, scale, delay int) error {
	if traj.Len() == 0 {
		return ErrNoData
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range traj.Frames {
		anim.Image = append(anim.Image, Frame(f, scale))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
