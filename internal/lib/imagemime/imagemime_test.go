package imagemime_test

import (
	"testing"

	"clubhub/internal/lib/imagemime"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageType(t *testing.T) {
	assert.True(t, imagemime.IsValidImageType("image/jpeg"))
	assert.True(t, imagemime.IsValidImageType("image/png"))
	assert.True(t, imagemime.IsValidImageType("image/gif"))
	assert.True(t, imagemime.IsValidImageType("image/webp"))
	assert.True(t, imagemime.IsValidImageType("image/svg+xml"))
	assert.True(t, imagemime.IsValidImageType("image/x-icon"))
	assert.True(t, imagemime.IsValidImageType("image/bmp"))

	assert.False(t, imagemime.IsValidImageType("application/pdf"))
	assert.False(t, imagemime.IsValidImageType("text/plain"))
	assert.False(t, imagemime.IsValidImageType("image/tiff"))
	assert.False(t, imagemime.IsValidImageType(""))
}

func TestValidateFilename(t *testing.T) {
	assert.True(t, imagemime.ValidateFilename("image.jpg"))
	assert.True(t, imagemime.ValidateFilename("my_photo.png"))

	assert.False(t, imagemime.ValidateFilename(""))
	assert.False(t, imagemime.ValidateFilename("file\x00.jpg"))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "jpg", imagemime.FileExtension("image.jpg"))
	assert.Equal(t, "png", imagemime.FileExtension("photo.png"))
	assert.Equal(t, "noextension", imagemime.FileExtension("noextension"))
}
