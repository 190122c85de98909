package video

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NativeFrame is a decoded frame exactly as ffmpeg writes it: tightly packed
// 3-byte pixels in blue, green, red order.
type NativeFrame struct {
	Width  int
	Height int
	Pix    []byte
}

// RGBA normalizes the frame into red, green, blue order.
func (f *NativeFrame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	n := f.Width * f.Height
	if len(f.Pix) < n*3 {
		n = len(f.Pix) / 3
	}
	for i := 0; i < n; i++ {
		src := f.Pix[i*3 : i*3+3]
		dst := img.Pix[i*4 : i*4+4]
		dst[0] = src[2]
		dst[1] = src[1]
		dst[2] = src[0]
		dst[3] = 0xff
	}
	return img
}

// Grayscale converts img to a single-channel image using the standard
// luma weights.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.SetGray(x-b.Min.X, y-b.Min.Y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
		}
	}
	return gray
}

// Resize scales img to exactly width x height. Gray input stays gray.
func Resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	rect := image.Rect(0, 0, width, height)
	if _, ok := img.(*image.Gray); ok {
		dst := image.NewGray(rect)
		draw.BiLinear.Scale(dst, rect, img, b, draw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(rect)
	draw.BiLinear.Scale(dst, rect, img, b, draw.Src, nil)
	return dst
}

// Channels reports how many color channels a frame carries.
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	default:
		return 3
	}
}
