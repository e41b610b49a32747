package book

import (
	"strconv"
	"strings"
)

// PageID strips the .yaml extension from a page filename.
func PageID(filename string) string {
	return strings.TrimSuffix(filename, ".yaml")
}

// isCode reports whether a hyphen segment looks like a character code:
// exactly two alphabetic characters.
func isCode(segment string) bool {
	if len(segment) != 2 {
		return false
	}
	for _, r := range segment {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

// CharacterCodes extracts the character codes embedded in a page filename.
// Filenames are hyphen-delimited: "cu-01.yaml" -> [cu], "cu-ha-02.yaml" ->
// [cu, ha].
func CharacterCodes(filename string) []string {
	var codes []string
	for _, part := range strings.Split(PageID(filename), "-") {
		if isCode(part) {
			codes = append(codes, part)
		}
	}
	return codes
}

// OtherCharacters returns the codes embedded in a page filename excluding
// the given main character.
func OtherCharacters(filename, mainCode string) []string {
	var others []string
	for _, code := range CharacterCodes(filename) {
		if code != mainCode {
			others = append(others, code)
		}
	}
	return others
}

// SpreadNumber extracts the spread number from a page filename. The final
// hyphen segment before the extension must be numeric; ok is false when it
// is not.
func SpreadNumber(filename string) (int, bool) {
	parts := strings.Split(PageID(filename), "-")
	last := parts[len(parts)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}
	return n, true
}

// InferNodeType guesses a node type from the filename alone: more than one
// embedded character code implies a meeting, otherwise solo.
func InferNodeType(filename string) NodeType {
	if len(CharacterCodes(filename)) > 1 {
		return NodeMeeting
	}
	return NodeSolo
}
