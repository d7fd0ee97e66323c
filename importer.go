package main

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// detectMime guesses the MIME type from the extension and falls back to
// sniffing the first bytes of the file.
func detectMime(path string) (string, error) {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); mt != "" {
		return mt, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// ImportFiles returns a media source for every path with an image/ MIME type.
// Other files are logged and dropped.
func ImportFiles(paths []string) []*MediaSource {
	var accepted []*MediaSource
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		mt, err := detectMime(p)
		if err != nil {
			slog.Warn("import rejected", "path", p, "error", err)
			continue
		}
		if !strings.HasPrefix(mt, "image/") {
			slog.Warn("import rejected", "path", p, "error", fmt.Errorf("%w: %s", ErrUnsupportedMedia, mt))
			continue
		}
		accepted = append(accepted, &MediaSource{Ref: p, Mime: mt})
	}
	return accepted
}

// splitImportInput splits the import prompt on commas, the way multiple files
// are typed into a single line.
func splitImportInput(input string) []string {
	var paths []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				part = filepath.Join(home, strings.TrimPrefix(part, "~"))
			}
		}
		if part != "" {
			paths = append(paths, part)
		}
	}
	return paths
}
