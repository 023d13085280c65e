package scan

import (
	"regexp"
	"strings"
)

var (
	videoRe    = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm|mpeg|mpg|m4v|ts|mts|m2ts|rmvb)$`)
	subtitleRe = regexp.MustCompile(`(?i)\.(srt|ass|ssa|sub|idx|smi|vtt|sup)$`)

	// Language code stuck between the base name and the subtitle
	// extension, e.g. "ep01.sc.ass" or "ep01.zh-Hans.srt".
	langRe = regexp.MustCompile(`(\.[a-zA-Z]{2,3}(?:[-_][a-zA-Z]{2,4})?)$`)
)

// IsVideo reports whether the filename has a video extension.
func IsVideo(filename string) bool {
	return videoRe.MatchString(filename)
}

// IsSubtitle reports whether the filename has a subtitle extension.
func IsSubtitle(filename string) bool {
	return subtitleRe.MatchString(filename)
}

// IsMedia reports whether the filename is a video or subtitle file.
func IsMedia(filename string) bool {
	return IsVideo(filename) || IsSubtitle(filename)
}

// ExtractExtension returns the suffix that must survive a rename. For
// subtitles this includes the language code so "ep01.sc.ass" keeps the
// ".sc.ass" tail; for everything else it is the plain extension.
func ExtractExtension(filename string) string {
	if IsSubtitle(filename) {
		return extractSubtitleSuffix(filename)
	}
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		return filename[dotIndex:]
	}
	return ""
}

func extractSubtitleSuffix(filename string) string {
	loc := subtitleRe.FindStringIndex(filename)
	if len(loc) == 0 {
		return ""
	}
	lang := langRe.FindString(filename[:loc[0]])
	return lang + filename[loc[0]:]
}
