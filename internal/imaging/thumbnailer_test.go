package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastinin/mediashelf/internal/domain"
)

// encodeTestPNG кодирует одноцветное изображение заданного размера в PNG
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnailerGenerateScalesDown(t *testing.T) {
	tn := NewThumbnailer(320)

	thumb, err := tn.Generate(encodeTestPNG(t, 800, 400), domain.ContentTypePNG)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 160, bounds.Dy())
}

func TestThumbnailerGenerateKeepsSmallImages(t *testing.T) {
	tn := NewThumbnailer(320)

	thumb, err := tn.Generate(encodeTestPNG(t, 100, 60), domain.ContentTypePNG)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 100, bounds.Dx())
	assert.Equal(t, 60, bounds.Dy())
}

func TestThumbnailerGenerateUnsupportedType(t *testing.T) {
	tn := NewThumbnailer(320)

	_, err := tn.Generate([]byte("not an archive"), domain.ContentTypeZip)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = tn.Generate(nil, domain.ContentTypeUnknown)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestThumbnailerGenerateCorruptImage(t *testing.T) {
	tn := NewThumbnailer(320)

	_, err := tn.Generate([]byte{0x89, 0x50, 0x4E, 0x47, 0xDE, 0xAD}, domain.ContentTypePNG)
	assert.Error(t, err)
}
