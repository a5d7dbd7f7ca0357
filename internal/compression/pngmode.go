package compression

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// color type dari ihdr
const (
	pngGrey      = 0
	pngTruecolor = 2
	pngPalette   = 3
	pngGreyAlpha = 4
	pngRGBA      = 6
)

// alpha hanya dihitung dari channel alpha eksplisit atau palette dengan trns
// trns pada grey/truecolor (color key) tidak dihitung, libvips menambah band
// alpha untuk kasus itu dan band tersebut dibuang saat konversi ke rgb
func pngHasAlpha(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	ok, err := readPNGAlpha(bufio.NewReader(f))
	if err != nil {
		return false, errors.Wrapf(err, "inspect %s", path)
	}
	return ok, nil
}

// baca chunk sampai IDAT, trns selalu berada sebelum data gambar
func readPNGAlpha(r io.Reader) (bool, error) {
	sig := make([]byte, len(pngSignature))
	if _, err := io.ReadFull(r, sig); err != nil {
		return false, err
	}
	if !bytes.Equal(sig, pngSignature) {
		return false, errors.New("not a png file")
	}

	colorType := -1
	var head [8]byte
	for {
		if _, err := io.ReadFull(r, head[:]); err != nil {
			return false, err
		}
		length := int64(binary.BigEndian.Uint32(head[:4]))
		kind := string(head[4:])

		switch kind {
		case "IHDR":
			if length < 13 {
				return false, errors.New("short IHDR chunk")
			}
			ihdr := make([]byte, length)
			if _, err := io.ReadFull(r, ihdr); err != nil {
				return false, err
			}
			colorType = int(ihdr[9])
			if colorType == pngGreyAlpha || colorType == pngRGBA {
				return true, nil
			}
			length = 0
		case "tRNS":
			return colorType == pngPalette, nil
		case "IDAT", "IEND":
			if colorType < 0 {
				return false, errors.New("missing IHDR chunk")
			}
			return false, nil
		}

		// sisa data ditambah crc 4 byte
		if _, err := io.CopyN(io.Discard, r, length+4); err != nil {
			return false, err
		}
	}
}
