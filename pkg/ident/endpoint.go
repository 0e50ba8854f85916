package ident

import (
	"fmt"
	"strings"
)

// SplitEndpoint splits a "node[:port]" token on its first colon.
// Both parts are trimmed; hasPort reports whether a colon was present.
func SplitEndpoint(endpoint string) (node, port string, hasPort bool) {
	node, port, hasPort = strings.Cut(endpoint, ":")
	if !hasPort {
		return strings.TrimSpace(endpoint), "", false
	}
	return strings.TrimSpace(node), strings.TrimSpace(port), true
}

// ParseLinkShorthand parses "Source[:Port] -> Target[:Port]".
func ParseLinkShorthand(link string) (from, to string, err error) {
	left, right, ok := strings.Cut(link, "->")
	if !ok {
		return "", "", fmt.Errorf("Invalid link shorthand '%s'. Expected format: 'Source[:Port] -> Target[:Port]'", link)
	}
	from = strings.TrimSpace(left)
	to = strings.TrimSpace(right)
	if from == "" || to == "" {
		return "", "", fmt.Errorf("Invalid link shorthand '%s'. Both source and target must be present.", link)
	}
	return from, to, nil
}
