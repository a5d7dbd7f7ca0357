package compression

import (
	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"
)

const (
	// kualitas 80 untuk screenshot ui, teks masih terbaca jelas
	DefaultQuality = 80
	// effort libvips = method libwebp, 6 paling lambat tapi paling kecil
	MaxEffort = 6
)

// encoder mengubah satu file png menjadi webp di path tujuan
type Encoder interface {
	Encode(src, dst string) (Mode, error)
}

// encoder berbasis libvips
// vips.Startup harus sudah dipanggil sebelum Encode
type VipsEncoder struct {
	Quality int
	Effort  int
}

func NewVipsEncoder() *VipsEncoder {
	return &VipsEncoder{Quality: DefaultQuality, Effort: MaxEffort}
}

func (e *VipsEncoder) Encode(src, dst string) (Mode, error) {
	// mode sequential unbuffered untuk hemat memori
	img, err := vips.NewImageFromFile(src, &vips.LoadOptions{
		Access: vips.AccessSequentialUnbuffered,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", src)
	}
	defer img.Close()

	hasAlpha, err := pngHasAlpha(src)
	if err != nil {
		return 0, err
	}
	mode := TargetMode(hasAlpha)
	if err := convert(img, mode); err != nil {
		return 0, errors.Wrapf(err, "convert %s to %s", src, mode)
	}

	ep := &vips.WebpsaveOptions{
		Q:      e.Quality,
		Effort: e.Effort,
		AlphaQ: 100,
	}
	if err := img.Webpsave(dst, ep); err != nil {
		return 0, errors.Wrapf(err, "save %s", dst)
	}
	return mode, nil
}

// samakan ke srgb 8 bit lalu buang band alpha jika mode rgb
// grey, grey+alpha dan png 16 bit ikut dikonversi di sini
func convert(img *vips.Image, mode Mode) error {
	if img.Interpretation() != vips.InterpretationSrgb {
		if err := img.Colourspace(vips.InterpretationSrgb, nil); err != nil {
			return err
		}
	}
	if img.Bands() > mode.Bands() {
		return img.ExtractBand(0, &vips.ExtractBandOptions{N: mode.Bands()})
	}
	return nil
}
