package models

import "strings"

const labelSeparator = ";"

// ParseLabel splits raw on ";" and returns the trimmed, non-empty pieces as
// tags, in their original order. The result is never nil.
func ParseLabel(raw string) []LabelTag {
	tags := []LabelTag{}
	for _, piece := range strings.Split(raw, labelSeparator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tags = append(tags, LabelTag{Text: piece})
	}
	return tags
}

// JoinLabel renders tags back into the raw "a; b" form.
func JoinLabel(tags []LabelTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.Text
	}
	return strings.Join(parts, labelSeparator+" ")
}
