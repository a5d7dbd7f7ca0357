package compression

// format piksel hasil konversi
type Mode int

const (
	ModeRGB Mode = iota
	ModeRGBA
)

func (m Mode) String() string {
	if m == ModeRGBA {
		return "RGBA"
	}
	return "RGB"
}

func (m Mode) Bands() int {
	if m == ModeRGBA {
		return 4
	}
	return 3
}

// gambar dengan alpha (rgba, grey+alpha, atau palette dengan trns)
// tetap rgba, selain itu jadi rgb
func TargetMode(hasAlpha bool) Mode {
	if hasAlpha {
		return ModeRGBA
	}
	return ModeRGB
}
