package reports

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// UploadPolicy decides which reports may be stored
type UploadPolicy struct {
	MaxPayloadSize      int64
	AllowedContentTypes []string
	AllowedExtensions   []string
}

// NewUploadPolicy normalizes the allow lists to lower case
func NewUploadPolicy(maxPayloadSize int64, contentTypes, extensions []string) *UploadPolicy {
	p := &UploadPolicy{MaxPayloadSize: maxPayloadSize}
	for _, ct := range contentTypes {
		p.AllowedContentTypes = append(p.AllowedContentTypes, normalizeContentType(ct))
	}
	for _, ext := range extensions {
		p.AllowedExtensions = append(p.AllowedExtensions, strings.ToLower(strings.TrimSpace(ext)))
	}
	return p
}

// CheckSize rejects empty payloads and payloads larger than MaxPayloadSize
func (p *UploadPolicy) CheckSize(size int64) error {
	if size == 0 {
		return ErrEmptyPayload
	}
	if size > p.MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", ErrPayloadTooLarge, size, p.MaxPayloadSize)
	}
	return nil
}

// CheckType accepts a report when its content type or its file extension is on the allow list
func (p *UploadPolicy) CheckType(filename, contentType string) error {
	if slices.Contains(p.AllowedContentTypes, normalizeContentType(contentType)) {
		return nil
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && slices.Contains(p.AllowedExtensions, ext) {
		return nil
	}
	return fmt.Errorf("%w: %q (%s)", ErrUnsupportedMediaType, filename, contentType)
}

// normalizeContentType drops parameters such as charset and lower-cases the media type
func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
