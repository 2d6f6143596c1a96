package client

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"audio-transcriber/internal/app/api/provider"
)

// ReadAudioFile loads a local file and declares its MIME type the way a
// browser file picker would: from content sniffing, falling back to the extension.
func ReadAudioFile(path string) (*provider.AudioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &provider.AudioFile{
		Name:        filepath.Base(path),
		ContentType: DetectContentType(path, data),
		Data:        data,
	}, nil
}

// DetectContentType returns the media type of data without parameters
func DetectContentType(path string, data []byte) string {
	detected := mimetype.Detect(data)
	contentType := detected.String()
	if !strings.HasPrefix(contentType, "audio/") {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
			contentType = byExt
		}
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mediaType
}
