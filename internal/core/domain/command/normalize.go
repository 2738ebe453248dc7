package command

import (
	"strings"
	"unicode"
)

const wordSeparators = " \t\r\n\f\v"

// NormalizeTimezone title-cases every "/" separated segment of a timezone
// candidate and strips leading and trailing slashes. The result is not
// guaranteed to name a real timezone.
func NormalizeTimezone(candidate string) string {
	segments := strings.Split(candidate, "/")
	for i, segment := range segments {
		segments[i] = titleWords(segment)
	}

	return strings.Trim(strings.Join(segments, "/"), "/")
}

func titleWords(s string) string {
	sb := &strings.Builder{}
	sb.Grow(len(s))

	upper := true
	for _, r := range s {
		if upper {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
		upper = strings.ContainsRune(wordSeparators, r)
	}

	return sb.String()
}
