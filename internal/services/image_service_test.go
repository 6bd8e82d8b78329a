// internal/services/image_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleImagesValidEntries(t *testing.T) {
	svc := NewImageService()

	images := []string{
		"https://cdn.example.com/products/mug.jpg",
		"http://cdn.example.com/products/mug-side.png",
		"data:image/png;base64,iVBORw0KGgo=",
		"https://cdn.example.com/products/mug.webp",
	}

	validated, err := svc.HandleImages(images)
	require.NoError(t, err)
	assert.Equal(t, images, validated)
}

func TestHandleImagesPreservesOrder(t *testing.T) {
	svc := NewImageService()

	images := []string{
		"https://cdn.example.com/b.png",
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/c.png",
	}

	validated, err := svc.HandleImages(images)
	require.NoError(t, err)
	assert.Equal(t, images, validated)
}

func TestHandleImagesTrimsWhitespace(t *testing.T) {
	svc := NewImageService()

	validated, err := svc.HandleImages([]string{"  https://cdn.example.com/mug.jpg  "})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/mug.jpg"}, validated)
}

func TestHandleImagesRejectsWholeListOnOneBadEntry(t *testing.T) {
	svc := NewImageService()

	validated, err := svc.HandleImages([]string{
		"https://cdn.example.com/good.jpg",
		"not-a-url",
		"https://cdn.example.com/also-good.png",
	})

	require.Error(t, err)
	assert.Nil(t, validated)

	var imageErr *InvalidImageError
	require.ErrorAs(t, err, &imageErr)
	assert.Equal(t, []string{"not-a-url"}, imageErr.Entries)
}

func TestHandleImagesEnumeratesAllBadEntries(t *testing.T) {
	svc := NewImageService()

	_, err := svc.HandleImages([]string{
		"",
		"ftp://cdn.example.com/mug.jpg",
		"https://cdn.example.com/mug.exe",
		"data:text/plain;base64,aGVsbG8=",
		"https://cdn.example.com/fine.gif",
	})

	var imageErr *InvalidImageError
	require.ErrorAs(t, err, &imageErr)
	assert.Len(t, imageErr.Entries, 4)
}

func TestHandleImagesEmptyList(t *testing.T) {
	svc := NewImageService()

	validated, err := svc.HandleImages(nil)
	require.NoError(t, err)
	assert.Empty(t, validated)
}
