package video

import (
	"image"
	"image/color"
	"testing"
)

func TestNativeFrameRGBASwapsChannels(t *testing.T) {
	f := &NativeFrame{
		Width:  2,
		Height: 1,
		Pix:    []byte{10, 20, 30, 40, 50, 60},
	}

	img := f.RGBA()

	want := []color.RGBA{
		{R: 30, G: 20, B: 10, A: 255},
		{R: 60, G: 50, B: 40, A: 255},
	}
	for x, w := range want {
		if got := img.RGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestNativeFrameRGBAShortBuffer(t *testing.T) {
	f := &NativeFrame{Width: 4, Height: 4, Pix: []byte{1, 2, 3}}

	img := f.RGBA()

	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 3, G: 2, B: 1, A: 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	gray := Grayscale(img)

	if gray.GrayAt(0, 0).Y != 255 {
		t.Errorf("white -> %d, want 255", gray.GrayAt(0, 0).Y)
	}
	if gray.GrayAt(1, 0).Y != 0 {
		t.Errorf("transparent black -> %d, want 0", gray.GrayAt(1, 0).Y)
	}
	if y := gray.GrayAt(1, 1).Y; y < 70 || y > 80 {
		t.Errorf("pure red -> %d, want about 76", y)
	}
	if Grayscale(gray) != gray {
		t.Error("Grayscale copied an image that was already gray")
	}
}

func TestGrayscaleOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 7))
	img.Set(5, 5, color.White)

	gray := Grayscale(img)

	if b := gray.Bounds(); b != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", b)
	}
	if gray.GrayAt(0, 0).Y != 255 {
		t.Error("origin pixel lost")
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name string
		src  image.Image
		w, h int
		gray bool
	}{
		{"rgba down", image.NewRGBA(image.Rect(0, 0, 640, 480)), 100, 100, false},
		{"rgba up", image.NewRGBA(image.Rect(0, 0, 10, 10)), 40, 30, false},
		{"gray down", image.NewGray(image.Rect(0, 0, 640, 480)), 100, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resize(tt.src, tt.w, tt.h)
			if b := out.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
			_, isGray := out.(*image.Gray)
			if isGray != tt.gray {
				t.Errorf("output %T, gray = %v", out, tt.gray)
			}
		})
	}
}

func TestResizeSameSizeReturnsInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if Resize(img, 8, 8) != image.Image(img) {
		t.Error("expected the input image back")
	}
}

func TestChannels(t *testing.T) {
	if Channels(image.NewGray(image.Rect(0, 0, 1, 1))) != 1 {
		t.Error("gray should have 1 channel")
	}
	if Channels(image.NewRGBA(image.Rect(0, 0, 1, 1))) != 3 {
		t.Error("rgba should have 3 channels")
	}
}

func TestResizeDownscaleAverages(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 640, 480))
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			if (x+y)%2 == 0 {
				src.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	out := Resize(src, 100, 100).(*image.Gray)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if v := out.GrayAt(x, y).Y; v < 100 || v > 155 {
				t.Fatalf("pixel (%d,%d) = %d, want a blend near mid gray", x, y, v)
			}
		}
	}
}
