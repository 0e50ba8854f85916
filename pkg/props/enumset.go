package props

import "strings"

// ParseEnumSet reads an enum set from a list Value or from the bracketed
// string forms "[A,B]", "#[A,B]" and a bare "A". Blank members are dropped.
func ParseEnumSet(v Value) []string {
	switch v.Type() {
	case TypeStringList:
		var out []string
		for _, item := range v.list {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case TypeString:
		return parseBracketed(v.s)
	}
	return nil
}

func parseBracketed(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatEnumSet writes members as "[A,B]".
func FormatEnumSet(members []string) string {
	return "[" + strings.Join(members, ",") + "]"
}
