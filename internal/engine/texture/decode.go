package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Scene textures are JPEG and PNG files.
	_ "image/jpeg"
	_ "image/png"
)

// decodeFile decodes an image file into RGBA pixel data, flipped vertically
// so row 0 is the bottom of the image (matching GL texture coordinates).
// The returned channel count is 3 for opaque sources and 4 for sources with
// an alpha channel; single-channel sources are rejected.
func decodeFile(path string) (*image.RGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}

	channels := channelCount(src)
	if channels != 3 && channels != 4 {
		return nil, channels, fmt.Errorf("unsupported channel count %d in %s image", channels, format)
	}

	return flipToRGBA(src), channels, nil
}

// channelCount maps a decoded image's color model onto an stb-style
// channel count.
func channelCount(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	default:
		return 4
	}
}

// flipToRGBA converts any image to RGBA with rows in bottom-up order.
func flipToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcY := bounds.Min.Y + (h - 1 - y)
		for x := 0; x < w; x++ {
			c := src.At(bounds.Min.X+x, srcY)
			r16, g16, b16, a16 := c.RGBA()
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
				A: uint8(a16 >> 8),
			})
		}
	}

	return dst
}
