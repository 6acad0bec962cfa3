package mdlex

import "strings"

const maxFrontMatterProbeBytes = 64 * 1024

var frontMatterDelimiters = [...]string{"---", "+++", ";;;"}

// StripFrontMatter returns src without a leading front matter block, and
// the byte offset at which the returned body starts in src.
//
// A block opens with a line holding only "---", "+++" or ";;;", is
// followed by a line that looks like metadata (key: value, key = value,
// or a JSON/TOML array or object) and ends at the next line holding the
// same delimiter. Anything else, including an unclosed block or one
// whose closing delimiter is too far into the input, is returned as is.
func StripFrontMatter(src string) (string, int) {
	openLine, next, ok := nextLine(src, 0)
	if !ok {
		return src, 0
	}
	delim, ok := openingDelimiter(openLine)
	if !ok {
		return src, 0
	}
	second, _, ok := nextLine(src, next)
	if !ok || !frontMatterMetadataLikely(second) {
		return src, 0
	}
	end, ok := closingDelimiter(src, next, delim)
	if !ok {
		return src, 0
	}
	return src[end:], end
}

// nextLine returns the line starting at start without its terminator,
// and the offset of the following line.
func nextLine(src string, start int) (string, int, bool) {
	if start >= len(src) {
		return "", start, false
	}
	i := strings.IndexByte(src[start:], '\n')
	if i < 0 {
		return strings.TrimSuffix(src[start:], "\r"), len(src), true
	}
	return strings.TrimSuffix(src[start:start+i], "\r"), start + i + 1, true
}

func openingDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	for _, delim := range frontMatterDelimiters {
		if trimmed == delim {
			return delim, true
		}
	}
	return "", false
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func closingDelimiter(src string, start int, delim string) (int, bool) {
	for idx := start; idx < len(src) && idx <= maxFrontMatterProbeBytes; {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if strings.TrimSpace(line) == delim {
			return next, true
		}
		idx = next
	}
	return 0, false
}
