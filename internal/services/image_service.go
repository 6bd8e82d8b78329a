// internal/services/image_service.go
package services

import (
	"net/url"
	"path"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
	".svg":  true,
}

// ImageService validates image references before they reach persistence.
type ImageService struct{}

func NewImageService() *ImageService {
	return &ImageService{}
}

// HandleImages validates and normalizes a list of image references, preserving
// input order. A reference is either an http(s) URL pointing at an image file
// or a base64 data URI. Any invalid entry rejects the whole list.
func (s *ImageService) HandleImages(images []string) ([]string, error) {
	validated := make([]string, 0, len(images))
	var invalid []string

	for _, image := range images {
		ref := strings.TrimSpace(image)
		if !s.isValidRef(ref) {
			invalid = append(invalid, image)
			continue
		}
		validated = append(validated, ref)
	}

	if len(invalid) > 0 {
		return nil, &InvalidImageError{Entries: invalid}
	}

	return validated, nil
}

func (s *ImageService) isValidRef(ref string) bool {
	if ref == "" {
		return false
	}

	if strings.HasPrefix(ref, "data:image/") {
		return strings.Contains(ref, ";base64,")
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}

	ext := strings.ToLower(path.Ext(parsed.Path))
	return allowedImageExtensions[ext]
}
