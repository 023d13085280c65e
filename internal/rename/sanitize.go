package rename

import (
	"fmt"
	"path/filepath"
	"strings"
)

const invalidFilenameChars = "<>:\"/\\|?*"

// sanitizeFilename replaces filesystem-unsafe characters with a single
// space and collapses runs. Fansub titles carry full-width CJK
// punctuation freely; only the ASCII set above plus control characters
// is unsafe.
func sanitizeFilename(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name is empty after sanitization")
	}

	var b strings.Builder
	b.Grow(len(name))

	lastSpace := false
	for _, r := range name {
		if r < 32 || r == 127 || strings.ContainsRune(invalidFilenameChars, r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
			b.WriteRune(' ')
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", fmt.Errorf("name is empty after sanitization")
	}
	return result, nil
}

// sanitizePath sanitizes every segment of a path while preserving the
// volume name and leading separator.
func sanitizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is empty after sanitization")
	}

	volume := filepath.VolumeName(path)
	rest := path[len(volume):]
	sep := string(filepath.Separator)
	isAbs := strings.HasPrefix(rest, sep)

	parts := strings.Split(rest, sep)
	sanitized := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean, err := sanitizeFilename(part)
		if err != nil {
			return "", err
		}
		sanitized = append(sanitized, clean)
	}
	if len(sanitized) == 0 {
		return "", fmt.Errorf("path is empty after sanitization")
	}

	cleanPath := filepath.Join(sanitized...)
	if isAbs {
		cleanPath = sep + cleanPath
	}
	return volume + cleanPath, nil
}
