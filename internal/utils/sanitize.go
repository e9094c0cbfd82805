package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxUnescapes bounds how many layers of entity encoding are peeled off
// before sanitizing.
const maxUnescapes = 4

// StripTags removes every HTML element from user supplied text and trims it.
// Entity-encoded markup is decoded first so it is stripped like plain markup.
func StripTags(s string) string {
	for range maxUnescapes {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}

	// the policy escapes what is left as text, e.g. "&" and "'"
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
