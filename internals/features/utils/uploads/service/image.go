package service

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

var DefaultWebPOptions = WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}

// decodeImage: webp lewat chai2010/webp, format lain (jpeg/png/gif) lewat imaging.
func decodeImage(data []byte, mime string) (image.Image, error) {
	if mime == "image/webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// ConvertToWebP: decode → perkecil (keep aspect, tidak pernah diperbesar) → encode webp lossy.
func ConvertToWebP(data []byte, mime string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(data, mime)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if (opt.MaxW > 0 && b.Dx() > opt.MaxW) || (opt.MaxH > 0 && b.Dy() > opt.MaxH) {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.CatmullRom)
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
