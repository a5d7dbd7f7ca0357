package compression

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestReadPNGAlpha(t *testing.T) {
	opaque := encodePNG(t, opaqueRGBA())

	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"rgba", encodePNG(t, transparentNRGBA()), true},
		{"rgba16", encodePNG(t, transparentNRGBA64()), true},
		{"rgb", opaque, false},
		{"gray", encodePNG(t, gray()), false},
		{"palette-trns", encodePNG(t, transparentPaletted()), true},
		{"rgb-color-key", withTRNS(t, opaque, []byte{0, 0, 0, 0, 0, 90}), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := readPNGAlpha(bytes.NewReader(c.data))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestReadPNGAlphaGrayAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "la.png")
	writeGrayAlphaPNG(t, path)

	got, err := pngHasAlpha(path)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestReadPNGAlphaInvalid(t *testing.T) {
	_, err := readPNGAlpha(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)

	// berhenti di tengah chunk
	truncated := encodePNG(t, gray())[:20]
	_, err = readPNGAlpha(bytes.NewReader(truncated))
	assert.Error(t, err)
}

func TestPNGHasAlphaMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step1.png")
	_, err := pngHasAlpha(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
