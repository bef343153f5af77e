package access

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeChannel trims and title-cases a channel name so that spreadsheet
// spellings like " AUTOSERVICIO" and "autoservicio" collapse to one channel.
func NormalizeChannel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return cases.Title(language.Und).String(trimmed)
}

// UniqueChannels normalizes, deduplicates and sorts channel names, dropping blanks.
func UniqueChannels(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		c := NormalizeChannel(r)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
