package settings

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/graphloom/pkg/props"
)

const (
	glyphWidth          = 0.55
	monospaceGlyphWidth = 0.6
	lineHeight          = 1.2
)

var monospaceHints = []string{"mono", "courier", "consolas", "menlo", "monaco"}

// LabelSize returns the width and height for a label with the given text.
//
// Without font estimation, or when the label's font size is missing or not
// a positive number, the defaults are returned unchanged. Otherwise the
// text is measured as runes * size * glyph width by one line of
// size * 1.2, never smaller than the defaults.
func (r *Resolver) LabelSize(text string, d LabelDefaults, p props.Properties) (w, h float64) {
	w, h = d.Width, d.Height
	if !r.estimate {
		return w, h
	}
	size, ok := p[props.KeyFontSize].Number()
	if !ok || size <= 0 {
		return w, h
	}

	factor := glyphWidth
	if name, ok := p[props.KeyFontName].Str(); ok && isMonospace(name) {
		factor = monospaceGlyphWidth
	}
	w = max(w, float64(utf8.RuneCountInString(text))*size*factor)
	h = max(h, size*lineHeight)
	return w, h
}

func isMonospace(font string) bool {
	font = strings.ToLower(font)
	for _, hint := range monospaceHints {
		if strings.Contains(font, hint) {
			return true
		}
	}
	return false
}
