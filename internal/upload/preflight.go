// Package upload validates submissions locally before any remote call,
// so obviously bad input never costs a round trip.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/ledongthuc/pdf"
)

// SupportedExtensions mirrors what the backend's extraction pipeline
// accepts.
var SupportedExtensions = []string{".pdf", ".txt", ".docx"}

// FileInfo is the local preflight result for a file submission.
type FileInfo struct {
	Path      string
	Title     string
	SizeBytes int64
	Pages     int // PDF only; 0 otherwise
}

// InspectFile checks a local file before upload: it must exist, be
// non-empty, carry a supported extension, and, for PDFs, be openable
// with a readable page tree. The title defaults to the filename
// without extension.
func InspectFile(path string) (*FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supported(ext) {
		return nil, fmt.Errorf("unsupported file type %s (supported: %s)", ext, strings.Join(SupportedExtensions, ", "))
	}

	info := &FileInfo{
		Path:      path,
		Title:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SizeBytes: st.Size(),
	}

	if ext == ".pdf" {
		f, reader, err := pdf.Open(path)
		if err != nil {
			return nil, fmt.Errorf("not a readable PDF: %w", err)
		}
		defer f.Close()
		info.Pages = reader.NumPage()
	}

	return info, nil
}

func supported(ext string) bool {
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractYouTubeID pulls the 11-character video id out of any of the
// URL shapes YouTube uses, rejecting everything else before the link
// is sent to the backend.
func ExtractYouTubeID(raw string) (string, error) {
	id, err := youtube.ExtractVideoID(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("not a valid YouTube URL: %w", err)
	}
	return id, nil
}
