package theory

import "strings"

func isRootLetter(b byte) bool {
	return b >= 'a' && b <= 'g'
}

// Normalize cleans up free-form chord input so it matches the grammar
// ParseChord expects. Three rules, applied in order: a lowercase root letter
// is uppercased, the letter after each slash is uppercased, and any casing of
// "maj" becomes lowercase. The function is total and idempotent, so it is
// safe to run on every keystroke.
func Normalize(input string) string {
	if input == "" {
		return ""
	}

	b := []byte(input)
	if isRootLetter(b[0]) {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i-1] == '/' && isRootLetter(b[i]) {
			b[i] -= 'a' - 'A'
		}
	}

	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); {
		if i+3 <= len(b) && strings.EqualFold(string(b[i:i+3]), "maj") {
			out.WriteString("maj")
			i += 3
			continue
		}
		out.WriteByte(b[i])
		i++
	}
	return out.String()
}
