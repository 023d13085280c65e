package parser

import (
	"regexp"
	"strings"
)

var (
	nameSepRe    = regexp.MustCompile(`/|\s{2}|-\s{2}`)
	regionLockRe = regexp.MustCompile(`[(（]仅限港澳台地区[）)]`)
	hanLeadRe    = regexp.MustCompile(`^\p{Han}{2,}`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)

	kanaRunRe  = regexp.MustCompile(`[\p{Hiragana}\p{Katakana}ー]{2,}`)
	hanRunRe   = regexp.MustCompile(`\p{Han}{2,}`)
	latinRunRe = regexp.MustCompile(`[a-zA-Z]{3,}`)
)

// splitName divides the cleaned name block into per-language titles. Groups
// separate translations with "/", double spaces, or underscores; when none
// of those are present a leading or trailing Chinese word is peeled off the
// space-joined remainder. Each piece is then claimed by the first script
// class it matches, kana before Han before Latin, one piece per language.
//
// The space heuristic is deliberately crude and keeps its known warts: a
// Latin loanword inside a Chinese title ("VTuber", "Lv2") still breaks the
// split at the first word boundary.
func splitName(name string) (en, zh, jp string) {
	name = strings.TrimSpace(name)
	name = regionLockRe.ReplaceAllString(name, "")

	var pieces []string
	for _, p := range nameSepRe.Split(name, -1) {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	if len(pieces) == 1 {
		if strings.Contains(name, "_") {
			pieces = strings.Split(name, "_")
		} else if strings.Contains(name, " - ") {
			pieces = strings.Split(name, "-")
		}
	}
	if len(pieces) == 1 {
		pieces = peelChineseWord(pieces[0])
	}

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		switch {
		case jp == "" && kanaRunRe.MatchString(piece):
			jp = piece
		case zh == "" && hanRunRe.MatchString(piece):
			zh = piece
		case en == "" && latinRunRe.MatchString(piece):
			en = piece
		}
	}
	return en, zh, jp
}

// peelChineseWord splits an undelimited block on the first or last
// space-separated word when that word is Chinese, which covers the common
// "中文名 English Name" and "English Name 中文名" layouts. A numeric first
// word is part of the title ("29 岁单身..."), not a split point.
func peelChineseWord(block string) []string {
	tokens := strings.Split(block, " ")
	if len(tokens) < 2 || digitsOnlyRe.MatchString(tokens[0]) {
		return []string{block}
	}
	for _, idx := range []int{0, len(tokens) - 1} {
		if !hanLeadRe.MatchString(tokens[idx]) {
			continue
		}
		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:idx]...)
		rest = append(rest, tokens[idx+1:]...)
		return []string{tokens[idx], strings.Join(rest, " ")}
	}
	return []string{block}
}
