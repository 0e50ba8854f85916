package ident

import (
	"regexp"
	"strings"
)

// Fallback is returned by Sanitize when nothing usable remains.
const Fallback = "id"

var (
	separatorRe  = regexp.MustCompile(`[\s:/@-]+`)
	invalidRe    = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRe = regexp.MustCompile(`_+`)
	tokenSplitRe = regexp.MustCompile(`[\s_]+`)
)

// stopWords are generic role nouns left out of the filtered alias.
var stopWords = map[string]bool{
	"router": true,
	"switch": true,
	"node":   true,
	"host":   true,
	"device": true,
}

// Sanitize lower-cases label and reduces it to [a-z0-9_]+.
func Sanitize(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = separatorRe.ReplaceAllString(s, "_")
	s = invalidRe.ReplaceAllString(s, "_")
	s = underscoreRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return Fallback
	}
	return s
}

// AliasCandidates returns the lookup aliases for label: its sanitized id and,
// when stop words can be removed without emptying it, the filtered form.
func AliasCandidates(label string) []string {
	base := Sanitize(label)
	aliases := []string{base}

	var kept []string
	for _, tok := range tokenSplitRe.Split(base, -1) {
		if tok == "" || stopWords[tok] {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) > 0 {
		if filtered := strings.Join(kept, "_"); filtered != base {
			aliases = append(aliases, filtered)
		}
	}
	return aliases
}
