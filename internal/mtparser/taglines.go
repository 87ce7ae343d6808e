// Package mtparser parses the SWIFT MT body (block 4 content handed over
// by swiftmsg.Message.Block4) into the tag/value lines the rest of this
// package's grammar rules operate on, and assembles the statement and
// payment entities from them.
package mtparser

import "strings"

// TagLine is one ":tag:value" line from an MT body, with continuation
// lines (those not starting with ":") folded into Value.
type TagLine struct {
	Tag   string
	Value string
}

// SplitTagLines reads an MT body into its tag lines. A line that doesn't
// open with ":XX:" is a continuation of the previous tag's value, joined
// with a newline, the convention SWIFT uses for multi-line fields like
// :86: and :50:.
func SplitTagLines(body string) []TagLine {
	var lines []TagLine
	for _, raw := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if raw == "" {
			continue
		}
		if tag, value, ok := splitTagPrefix(raw); ok {
			lines = append(lines, TagLine{Tag: tag, Value: value})
			continue
		}
		if len(lines) > 0 {
			lines[len(lines)-1].Value += "\n" + raw
		}
	}
	return lines
}

// splitTagPrefix recognizes a leading ":tag:" where tag is 2 digits plus
// an optional single uppercase option letter (e.g. "61", "86", "60F").
func splitTagPrefix(line string) (tag, value string, ok bool) {
	if len(line) < 4 || line[0] != ':' {
		return "", "", false
	}
	end := strings.IndexByte(line[1:], ':')
	if end < 0 {
		return "", "", false
	}
	end++ // adjust for the slice offset
	candidate := line[1:end]
	if !isTagShape(candidate) {
		return "", "", false
	}
	return candidate, line[end+1:], true
}

func isTagShape(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return false
	}
	if len(s) == 3 && (s[2] < 'A' || s[2] > 'Z') {
		return false
	}
	return true
}

// Find returns the value of the first tag line matching tag, if present.
func Find(lines []TagLine, tag string) (string, bool) {
	for _, l := range lines {
		if l.Tag == tag {
			return l.Value, true
		}
	}
	return "", false
}

// FindAll returns the values of every tag line matching tag, in order.
func FindAll(lines []TagLine, tag string) []string {
	var values []string
	for _, l := range lines {
		if l.Tag == tag {
			values = append(values, l.Value)
		}
	}
	return values
}
