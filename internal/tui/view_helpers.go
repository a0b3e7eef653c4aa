package tui

// fitText caps v at max characters. Truncation operates on runes so a
// multibyte title never gets cut mid-character.
func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
